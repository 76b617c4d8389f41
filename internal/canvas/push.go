package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// MembershipAck acknowledges a membership replace. Members holds the ids
// the remote group ended up with, as confirmed by the LMS response.
type MembershipAck struct {
	GroupID int64   `json:"group_id"`
	Members []int64 `json:"members"`
}

// ReplaceGroupMembers authoritatively replaces the member list of a remote
// group with exactly userIDs. This is a full overwrite: members missing from
// the list are removed remotely. The call blocks until the LMS acknowledges.
func (c *Client) ReplaceGroupMembers(ctx context.Context, groupID int64, userIDs []int64) (*MembershipAck, error) {
	if userIDs == nil {
		userIDs = []int64{}
	}
	payload, err := json.Marshal(map[string]interface{}{"members": userIDs})
	if err != nil {
		return nil, err
	}

	rawURL := fmt.Sprintf("%s%s/groups/%d", c.baseURL, apiPrefix, groupID)
	_, body, err := c.request(ctx, http.MethodPut, rawURL, payload)
	if err != nil {
		return nil, err
	}

	// Canvas responds with the updated group; members are confirmed with a
	// follow-up listing so the ack reflects remote reality, not our request.
	var group Group
	if err := json.Unmarshal(body, &group); err != nil {
		return nil, fmt.Errorf("decode group %d: %w", groupID, err)
	}

	users, err := c.ListGroupUsers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	ack := &MembershipAck{GroupID: group.ID, Members: make([]int64, 0, len(users))}
	for _, u := range users {
		ack.Members = append(ack.Members, u.ID)
	}
	return ack, nil
}

// CreateGroupCategory creates a group set in a course
func (c *Client) CreateGroupCategory(ctx context.Context, courseID int64, name string) (*GroupCategory, error) {
	payload, err := json.Marshal(map[string]interface{}{"name": name})
	if err != nil {
		return nil, err
	}
	rawURL := fmt.Sprintf("%s%s/courses/%d/group_categories", c.baseURL, apiPrefix, courseID)
	_, body, err := c.request(ctx, http.MethodPost, rawURL, payload)
	if err != nil {
		return nil, err
	}
	var category GroupCategory
	if err := json.Unmarshal(body, &category); err != nil {
		return nil, fmt.Errorf("decode group category: %w", err)
	}
	return &category, nil
}

// CreateGroup creates a group inside a group category
func (c *Client) CreateGroup(ctx context.Context, categoryID int64, name, description string) (*Group, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"name":        name,
		"description": description,
	})
	if err != nil {
		return nil, err
	}
	rawURL := fmt.Sprintf("%s%s/group_categories/%d/groups", c.baseURL, apiPrefix, categoryID)
	_, body, err := c.request(ctx, http.MethodPost, rawURL, payload)
	if err != nil {
		return nil, err
	}
	var group Group
	if err := json.Unmarshal(body, &group); err != nil {
		return nil, fmt.Errorf("decode group: %w", err)
	}
	return &group, nil
}
