package api

import (
	"context"
	"net/url"
	"strconv"
)

// RecordMilkRequest appends one milking entry for today.
type RecordMilkRequest struct {
	FarmID  int64       `json:"farmId"`
	TagID   string      `json:"tagId"`
	Session MilkSession `json:"session"`
	Liters  float64     `json:"liters"`
}

// RecordMilk records today's production for one animal and session.
func (c *Client) RecordMilk(ctx context.Context, req RecordMilkRequest) (*MilkEntry, error) {
	var out MilkEntry
	if err := c.post(ctx, "/milk/today", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TodayBreakdown returns today's production split into morning and evening.
func (c *Client) TodayBreakdown(ctx context.Context, farmID int64) (*MilkBreakdown, error) {
	var out MilkBreakdown
	q := url.Values{"farmId": {strconv.FormatInt(farmID, 10)}}
	if err := c.get(ctx, "/milk/today/breakdown", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TodayEntries returns the individual entries recorded today.
func (c *Client) TodayEntries(ctx context.Context, farmID int64) ([]MilkEntry, error) {
	var out []MilkEntry
	q := url.Values{"farmId": {strconv.FormatInt(farmID, 10)}}
	if err := c.get(ctx, "/milk/today/entries", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MilkHistory returns the daily production series for the last `days` days.
func (c *Client) MilkHistory(ctx context.Context, farmID int64, days int) ([]ProductionDay, error) {
	var out []ProductionDay
	q := url.Values{
		"farmId": {strconv.FormatInt(farmID, 10)},
		"days":   {strconv.Itoa(days)},
	}
	if err := c.get(ctx, "/milk/history", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MilkAvailability returns the sellable quantity for a farm, date and
// session as computed by the backend.
func (c *Client) MilkAvailability(ctx context.Context, farmID int64, date string, session MilkSession) (*Availability, error) {
	var out Availability
	q := url.Values{
		"farmId":  {strconv.FormatInt(farmID, 10)},
		"date":    {date},
		"session": {string(session)},
	}
	if err := c.get(ctx, "/milk/availability", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
