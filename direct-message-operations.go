package twitter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultCount = 20
)

const (
	endpointDirectMessages        = "direct_messages.json"
	endpointDirectMessagesSent    = "direct_messages/sent.json"
	endpointDirectMessagesShow    = "direct_messages/show.json"
	endpointDirectMessagesNew     = "direct_messages/new.json"
	endpointDirectMessagesDestroy = "direct_messages/destroy.json"
)

// PageOptions selects one page of a message list. Zero Page and Count fall
// back to DefaultPage and DefaultCount; zero SinceID and MaxID are omitted.
type PageOptions struct {
	Page  int
	Count int

	// SinceID returns only messages newer than this id.
	SinceID int64
	// MaxID returns only messages older than or equal to this id.
	MaxID int64
}

func (opt *PageOptions) params() (params, error) {
	o := PageOptions{}
	if opt != nil {
		o = *opt
	}

	if o.Page == 0 {
		o.Page = DefaultPage
	}
	if o.Count == 0 {
		o.Count = DefaultCount
	}

	switch {
	case o.Page < 0:
		return nil, fmt.Errorf("%w: page %d", ErrInvalidArgument, o.Page)
	case o.Count < 0:
		return nil, fmt.Errorf("%w: count %d", ErrInvalidArgument, o.Count)
	case o.SinceID < 0:
		return nil, fmt.Errorf("%w: since_id %d", ErrInvalidArgument, o.SinceID)
	case o.MaxID < 0:
		return nil, fmt.Errorf("%w: max_id %d", ErrInvalidArgument, o.MaxID)
	}

	p := make(params, 0, 4).
		addInt("page", o.Page).
		addInt("count", o.Count).
		addInt64IfSet("since_id", o.SinceID).
		addInt64IfSet("max_id", o.MaxID)
	return p, nil
}

// Recipient addresses a message either by screen name or by user id, never both.
type Recipient struct {
	ScreenName string
	UserID     int64
}

func ToScreenName(screenName string) Recipient {
	return Recipient{ScreenName: screenName}
}

func ToUserID(userID int64) Recipient {
	return Recipient{UserID: userID}
}

func (r Recipient) String() string {
	if r.ScreenName != "" {
		return "@" + r.ScreenName
	}
	return strconv.FormatInt(r.UserID, 10)
}

func (r Recipient) params() (params, error) {
	switch {
	case r.ScreenName != "" && r.UserID != 0:
		return nil, fmt.Errorf("%w: both screen_name and user_id given", ErrInvalidArgument)
	case r.ScreenName != "":
		return params{}.add("screen_name", r.ScreenName), nil
	case r.UserID > 0:
		return params{}.addInt64("user_id", r.UserID), nil
	case r.UserID < 0:
		return nil, fmt.Errorf("%w: user_id %d", ErrInvalidArgument, r.UserID)
	}
	return nil, fmt.Errorf("%w: no recipient", ErrInvalidArgument)
}

func checkMessageID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id %d", ErrInvalidArgument, id)
	}
	return nil
}

func (c *Client) getList(ctx context.Context, endpoint string, opt *PageOptions) ([]DirectMessage, error) {
	p, err := opt.params()
	if err != nil {
		return nil, err
	}

	var messages []DirectMessage
	if err := c.do(ctx, http.MethodGet, endpoint, p, &messages); err != nil {
		return nil, err
	}
	// null 은 빈 목록이 아님
	if messages == nil {
		return nil, &ParseError{Endpoint: endpoint, Err: fmt.Errorf("%w: null list", ErrMalformedMessage)}
	}

	for i := range messages {
		if err := messages[i].validate(); err != nil {
			return nil, &ParseError{Endpoint: endpoint, Err: fmt.Errorf("item %d: %w", i, err)}
		}
	}

	return messages, nil
}

func (c *Client) getOne(ctx context.Context, method string, endpoint string, p params) (DirectMessage, error) {
	var dm DirectMessage
	if err := c.do(ctx, method, endpoint, p, &dm); err != nil {
		return DirectMessage{}, err
	}

	if err := dm.validate(); err != nil {
		return DirectMessage{}, &ParseError{Endpoint: endpoint, Err: err}
	}

	return dm, nil
}

// GetDirectMessagesReceived returns one page of the messages sent to the
// authenticated user, in the order the server returned them. opt may be nil.
func (c *Client) GetDirectMessagesReceived(ctx context.Context, opt *PageOptions) ([]DirectMessage, error) {
	return c.getList(ctx, endpointDirectMessages, opt)
}

// GetDirectMessagesSent returns one page of the messages sent by the
// authenticated user, in the order the server returned them. opt may be nil.
func (c *Client) GetDirectMessagesSent(ctx context.Context, opt *PageOptions) ([]DirectMessage, error) {
	return c.getList(ctx, endpointDirectMessagesSent, opt)
}

// GetDirectMessage returns a single message.
func (c *Client) GetDirectMessage(ctx context.Context, id int64) (DirectMessage, error) {
	if err := checkMessageID(id); err != nil {
		return DirectMessage{}, err
	}

	return c.getOne(ctx, http.MethodGet, endpointDirectMessagesShow, params{}.addInt64("id", id))
}

// SendDirectMessage sends text to the recipient and returns the created message.
// The 140 character limit is enforced by the server.
func (c *Client) SendDirectMessage(ctx context.Context, to Recipient, text string) (DirectMessage, error) {
	p, err := to.params()
	if err != nil {
		return DirectMessage{}, err
	}
	if text == "" {
		return DirectMessage{}, fmt.Errorf("%w: empty text", ErrInvalidArgument)
	}

	return c.getOne(ctx, http.MethodPost, endpointDirectMessagesNew, p.add("text", text))
}

func (c *Client) SendDirectMessageToScreenName(ctx context.Context, screenName string, text string) (DirectMessage, error) {
	return c.SendDirectMessage(ctx, ToScreenName(screenName), text)
}

func (c *Client) SendDirectMessageToUserID(ctx context.Context, userID int64, text string) (DirectMessage, error) {
	return c.SendDirectMessage(ctx, ToUserID(userID), text)
}

// DeleteDirectMessage deletes a message and returns its last representation.
func (c *Client) DeleteDirectMessage(ctx context.Context, id int64) (DirectMessage, error) {
	if err := checkMessageID(id); err != nil {
		return DirectMessage{}, err
	}

	return c.getOne(ctx, http.MethodPost, endpointDirectMessagesDestroy, params{}.addInt64("id", id))
}
