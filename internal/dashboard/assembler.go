// Package dashboard aggregates backend resources into role-specific view
// models. All fetches for one load run concurrently and every source
// degrades independently: a failed source yields its zero value and a warn
// log, never a failed dashboard.
package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"
	"go.uber.org/zap"

	"dairydesk/internal/api"
)

// Assembler issues the per-role fetch sets.
type Assembler struct {
	client *api.Client
	logger *zap.Logger
}

// New creates an assembler over the given client.
func New(client *api.Client, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{client: client, logger: logger}
}

// OwnerDashboard is the consolidated farm-owner view model.
type OwnerDashboard struct {
	MorningLiters float64
	EveningLiters float64
	HerdCount     int
	WorkerCount   int
	ActiveCattle  int
	History       []api.ProductionDay
}

// WorkerDashboard is the consolidated worker view model.
type WorkerDashboard struct {
	Farms        []api.Farm
	TodayEntries []api.MilkEntry
	Cattle       []api.Cattle
}

// BuyerDashboard is the consolidated buyer view model.
type BuyerDashboard struct {
	Farms         []api.Farm
	Subscriptions []api.Subscription
	Orders        []api.Order
}

// LoadOwner fetches the owner dashboard for one farm. historyDays selects
// the production history window (7 or 30 in the UI).
func (a *Assembler) LoadOwner(ctx context.Context, farmID int64, historyDays int) *OwnerDashboard {
	dash := &OwnerDashboard{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		breakdown, err := a.client.TodayBreakdown(ctx, farmID)
		if err != nil {
			a.degrade("today breakdown", err)
			return nil
		}
		dash.MorningLiters = breakdown.MorningLiters
		dash.EveningLiters = breakdown.EveningLiters
		return nil
	})
	g.Go(func() error {
		n, err := a.client.HerdCount(ctx, farmID)
		if err != nil {
			a.degrade("herd count", err)
			return nil
		}
		dash.HerdCount = n
		return nil
	})
	g.Go(func() error {
		n, err := a.client.WorkerCount(ctx, farmID)
		if err != nil {
			a.degrade("worker count", err)
			return nil
		}
		dash.WorkerCount = n
		return nil
	})
	g.Go(func() error {
		n, err := a.client.ActiveCattleCount(ctx, farmID)
		if err != nil {
			a.degrade("active cattle count", err)
			return nil
		}
		dash.ActiveCattle = n
		return nil
	})
	g.Go(func() error {
		history, err := a.client.MilkHistory(ctx, farmID, historyDays)
		if err != nil {
			a.degrade("production history", err)
			return nil
		}
		dash.History = history
		return nil
	})

	// Fetch goroutines never return errors; Wait only joins them.
	_ = g.Wait()
	return dash
}

// LoadWorker fetches the worker dashboard. farmID is the active farm; the
// assigned-farms list loads regardless so the worker can switch.
func (a *Assembler) LoadWorker(ctx context.Context, farmID int64) *WorkerDashboard {
	dash := &WorkerDashboard{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		farms, err := a.client.MyFarms(ctx)
		if err != nil {
			a.degrade("assigned farms", err)
			return nil
		}
		dash.Farms = farms
		return nil
	})
	g.Go(func() error {
		entries, err := a.client.TodayEntries(ctx, farmID)
		if err != nil {
			a.degrade("today entries", err)
			return nil
		}
		dash.TodayEntries = entries
		return nil
	})
	g.Go(func() error {
		cattle, err := a.client.FarmCattle(ctx, farmID)
		if err != nil {
			a.degrade("farm cattle", err)
			return nil
		}
		dash.Cattle = cattle
		return nil
	})

	_ = g.Wait()
	return dash
}

// LoadBuyer fetches the buyer dashboard.
func (a *Assembler) LoadBuyer(ctx context.Context) *BuyerDashboard {
	dash := &BuyerDashboard{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		farms, err := a.client.ListFarms(ctx)
		if err != nil {
			a.degrade("farm list", err)
			return nil
		}
		dash.Farms = farms
		return nil
	})
	g.Go(func() error {
		subs, err := a.client.MySubscriptions(ctx)
		if err != nil {
			a.degrade("subscriptions", err)
			return nil
		}
		dash.Subscriptions = subs
		return nil
	})
	g.Go(func() error {
		orders, err := a.client.MyOrders(ctx)
		if err != nil {
			a.degrade("orders", err)
			return nil
		}
		dash.Orders = orders
		return nil
	})

	_ = g.Wait()
	return dash
}

func (a *Assembler) degrade(source string, err error) {
	a.logger.Warn("dashboard source failed, using zero value",
		zap.String("source", source),
		zap.Error(err))
}
