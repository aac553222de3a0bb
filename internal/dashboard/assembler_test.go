package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dairydesk/internal/api"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoadOwner_AllSourcesHealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/milk/today/breakdown":
			w.Write([]byte(`{"morningLiters":40,"eveningLiters":35,"totalLiters":75}`))
		case "/farms/1/herd-count":
			w.Write([]byte(`{"count":24}`))
		case "/farms/1/worker-count":
			w.Write([]byte(`{"count":3}`))
		case "/farms/1/active-cattle-count":
			w.Write([]byte(`{"count":20}`))
		case "/milk/history":
			w.Write([]byte(`[{"date":"2026-08-31","liters":70},{"date":"2026-09-01","liters":75}]`))
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	assembler := New(api.NewClient(server.URL), nil)
	dash := assembler.LoadOwner(context.Background(), 1, 7)

	assert.Equal(t, 40.0, dash.MorningLiters)
	assert.Equal(t, 35.0, dash.EveningLiters)
	assert.Equal(t, 24, dash.HerdCount)
	assert.Equal(t, 3, dash.WorkerCount)
	assert.Equal(t, 20, dash.ActiveCattle)
	require.Len(t, dash.History, 2)
	assert.Equal(t, "2026-09-01", dash.History[1].Date)
}

func TestLoadOwner_OneFailingSourceDegradesAlone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/milk/today/breakdown":
			w.Write([]byte(`{"morningLiters":40,"eveningLiters":35}`))
		case "/farms/1/herd-count":
			w.Write([]byte(`{"count":24}`))
		case "/farms/1/worker-count":
			// The one rejecting source.
			w.WriteHeader(http.StatusInternalServerError)
		case "/farms/1/active-cattle-count":
			w.Write([]byte(`{"count":20}`))
		case "/milk/history":
			w.Write([]byte(`[{"date":"2026-09-01","liters":75}]`))
		}
	}))
	defer server.Close()

	assembler := New(api.NewClient(server.URL), nil)
	dash := assembler.LoadOwner(context.Background(), 1, 7)

	// Failed source gets its zero value...
	assert.Equal(t, 0, dash.WorkerCount)
	// ...everything else stays populated.
	assert.Equal(t, 40.0, dash.MorningLiters)
	assert.Equal(t, 24, dash.HerdCount)
	assert.Equal(t, 20, dash.ActiveCattle)
	assert.Len(t, dash.History, 1)
}

func TestLoadBuyer_TotalBackendFailureStillReturns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	assembler := New(api.NewClient(server.URL), nil)
	dash := assembler.LoadBuyer(context.Background())

	require.NotNil(t, dash)
	assert.Empty(t, dash.Farms)
	assert.Empty(t, dash.Subscriptions)
	assert.Empty(t, dash.Orders)
}

func TestLoadWorker_FetchesAllSourcesConcurrently(t *testing.T) {
	var inFlight, peak int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		defer atomic.AddInt32(&inFlight, -1)

		switch r.URL.Path {
		case "/farms/me":
			w.Write([]byte(`[{"id":1,"name":"Meadowbrook"}]`))
		case "/milk/today/entries":
			w.Write([]byte(`[{"tagId":"C-7","session":"MORNING","liters":8.5,"date":"2026-09-01"}]`))
		case "/cattle/farm/1":
			w.Write([]byte(`[{"id":9,"tagId":"C-7","breed":"Holstein","status":"ACTIVE"}]`))
		}
	}))
	defer server.Close()

	assembler := New(api.NewClient(server.URL), nil)
	dash := assembler.LoadWorker(context.Background(), 1)

	require.Len(t, dash.Farms, 1)
	require.Len(t, dash.TodayEntries, 1)
	require.Len(t, dash.Cattle, 1)
	assert.Equal(t, api.CattleActive, dash.Cattle[0].Status)
}
