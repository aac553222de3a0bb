package api

import (
	"context"
	"fmt"
)

// AssignWorkerRequest invites or assigns a worker to a farm by email.
type AssignWorkerRequest struct {
	Email   string  `json:"email"`
	ShedIDs []int64 `json:"shedIds,omitempty"`
}

// ShedAssignmentRequest replaces a worker's shed assignments.
type ShedAssignmentRequest struct {
	ShedIDs []int64 `json:"shedIds"`
}

// FarmWorkers lists the workers assigned to a farm.
func (c *Client) FarmWorkers(ctx context.Context, farmID int64) ([]Worker, error) {
	var out []Worker
	if err := c.get(ctx, fmt.Sprintf("/farms/%d/workers", farmID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignWorker attaches a worker to a farm.
func (c *Client) AssignWorker(ctx context.Context, farmID int64, req AssignWorkerRequest) (*Worker, error) {
	var out Worker
	if err := c.post(ctx, fmt.Sprintf("/farms/%d/assign-worker", farmID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetWorkerSheds replaces the shed assignments of a worker.
func (c *Client) SetWorkerSheds(ctx context.Context, workerID int64, shedIDs []int64) (*Worker, error) {
	var out Worker
	req := ShedAssignmentRequest{ShedIDs: shedIDs}
	if err := c.patch(ctx, fmt.Sprintf("/workers/%d/shed", workerID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
