package twitter

import "context"

// Async variants run the blocking call on a goroutine. ctx still bounds the
// request itself.

func (c *Client) GetDirectMessagesReceivedAsync(ctx context.Context, opt *PageOptions) *Future[[]DirectMessage] {
	return async(func() ([]DirectMessage, error) {
		return c.GetDirectMessagesReceived(ctx, opt)
	})
}

func (c *Client) GetDirectMessagesSentAsync(ctx context.Context, opt *PageOptions) *Future[[]DirectMessage] {
	return async(func() ([]DirectMessage, error) {
		return c.GetDirectMessagesSent(ctx, opt)
	})
}

func (c *Client) GetDirectMessageAsync(ctx context.Context, id int64) *Future[DirectMessage] {
	return async(func() (DirectMessage, error) {
		return c.GetDirectMessage(ctx, id)
	})
}

func (c *Client) SendDirectMessageAsync(ctx context.Context, to Recipient, text string) *Future[DirectMessage] {
	return async(func() (DirectMessage, error) {
		return c.SendDirectMessage(ctx, to, text)
	})
}

func (c *Client) SendDirectMessageToScreenNameAsync(ctx context.Context, screenName string, text string) *Future[DirectMessage] {
	return c.SendDirectMessageAsync(ctx, ToScreenName(screenName), text)
}

func (c *Client) SendDirectMessageToUserIDAsync(ctx context.Context, userID int64, text string) *Future[DirectMessage] {
	return c.SendDirectMessageAsync(ctx, ToUserID(userID), text)
}

func (c *Client) DeleteDirectMessageAsync(ctx context.Context, id int64) *Future[DirectMessage] {
	return async(func() (DirectMessage, error) {
		return c.DeleteDirectMessage(ctx, id)
	})
}
