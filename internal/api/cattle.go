package api

import (
	"context"
	"fmt"
)

// CattleRequest creates or updates an animal. Status changes go through the
// backend's transition rules; this client only requests them.
type CattleRequest struct {
	TagID  string       `json:"tagId"`
	Breed  string       `json:"breed"`
	Status CattleStatus `json:"status,omitempty"`
	ShedID int64        `json:"shedId,omitempty"`
	FarmID int64        `json:"farmId,omitempty"`
}

// ListCattle returns all cattle visible to the caller.
func (c *Client) ListCattle(ctx context.Context) ([]Cattle, error) {
	var out []Cattle
	if err := c.get(ctx, "/cattle", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FarmCattle returns the cattle of one farm.
func (c *Client) FarmCattle(ctx context.Context, farmID int64) ([]Cattle, error) {
	var out []Cattle
	if err := c.get(ctx, fmt.Sprintf("/cattle/farm/%d", farmID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCattle fetches one animal by id.
func (c *Client) GetCattle(ctx context.Context, id int64) (*Cattle, error) {
	var out Cattle
	if err := c.get(ctx, fmt.Sprintf("/cattle/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddCattle registers a new animal.
func (c *Client) AddCattle(ctx context.Context, req CattleRequest) (*Cattle, error) {
	var out Cattle
	if err := c.post(ctx, "/cattle", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCattle patches an animal, including requested status transitions.
func (c *Client) UpdateCattle(ctx context.Context, id int64, req CattleRequest) (*Cattle, error) {
	var out Cattle
	if err := c.patch(ctx, fmt.Sprintf("/cattle/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCattle removes an animal.
func (c *Client) DeleteCattle(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/cattle/%d", id))
}
