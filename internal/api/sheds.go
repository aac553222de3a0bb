package api

import (
	"context"
	"fmt"
)

// ShedRequest creates a shed within a farm.
type ShedRequest struct {
	Name string `json:"name"`
}

// ListSheds returns the sheds of a farm.
func (c *Client) ListSheds(ctx context.Context, farmID int64) ([]Shed, error) {
	var out []Shed
	if err := c.get(ctx, fmt.Sprintf("/farms/%d/sheds", farmID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateShed adds a shed to a farm.
func (c *Client) CreateShed(ctx context.Context, farmID int64, req ShedRequest) (*Shed, error) {
	var out Shed
	if err := c.post(ctx, fmt.Sprintf("/farms/%d/sheds", farmID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteShed removes a shed.
func (c *Client) DeleteShed(ctx context.Context, shedID int64) error {
	return c.delete(ctx, fmt.Sprintf("/sheds/%d", shedID))
}
