package twitter

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedMessage is reported when a decoded direct message misses its id,
// sender or recipient.
var ErrMalformedMessage = errors.New("twitter: malformed direct message")

// UserReference identifies the sender or the recipient of a direct message.
type UserReference struct {
	ID         int64  `json:"id"`
	IDStr      string `json:"id_str,omitempty"`
	ScreenName string `json:"screen_name"`
}

// DirectMessage is a private message between two users.
//
// Values are only produced by decoding an API response and are never modified
// by this package afterwards.
type DirectMessage struct {
	ID        int64
	IDStr     string
	Text      string
	Sender    UserReference
	Recipient UserReference
	CreatedAt time.Time
}

func (u UserReference) validate(role string) error {
	if u.ID <= 0 {
		return fmt.Errorf("%w: %s id %d", ErrMalformedMessage, role, u.ID)
	}
	return nil
}

func (dm *DirectMessage) validate() error {
	if dm.ID <= 0 {
		return fmt.Errorf("%w: id %d", ErrMalformedMessage, dm.ID)
	}
	if err := dm.Sender.validate("sender"); err != nil {
		return err
	}
	return dm.Recipient.validate("recipient")
}

// directMessageWire is the full 1.1 object. Besides the nested users it
// carries flattened sender_* and recipient_* fields.
type directMessageWire struct {
	ID        int64         `json:"id"`
	IDStr     string        `json:"id_str,omitempty"`
	Text      string        `json:"text"`
	CreatedAt time.Time     `json:"created_at"`
	Sender    UserReference `json:"sender"`
	Recipient UserReference `json:"recipient"`

	SenderID            int64  `json:"sender_id,omitempty"`
	SenderScreenName    string `json:"sender_screen_name,omitempty"`
	RecipientID         int64  `json:"recipient_id,omitempty"`
	RecipientScreenName string `json:"recipient_screen_name,omitempty"`
}

// MarshalJSON encodes the message in the same shape the API returns it.
func (dm DirectMessage) MarshalJSON() ([]byte, error) {
	return jsonTwitter.Marshal(&directMessageWire{
		ID:        dm.ID,
		IDStr:     dm.IDStr,
		Text:      dm.Text,
		CreatedAt: dm.CreatedAt,
		Sender:    dm.Sender,
		Recipient: dm.Recipient,

		SenderID:            dm.Sender.ID,
		SenderScreenName:    dm.Sender.ScreenName,
		RecipientID:         dm.Recipient.ID,
		RecipientScreenName: dm.Recipient.ScreenName,
	})
}

// UnmarshalJSON decodes a message object. A missing nested user is rebuilt
// from the flattened fields.
func (dm *DirectMessage) UnmarshalJSON(b []byte) error {
	var w directMessageWire
	if err := jsonTwitter.Unmarshal(b, &w); err != nil {
		return err
	}

	if w.Sender.ID == 0 {
		w.Sender.ID = w.SenderID
	}
	if w.Sender.ScreenName == "" {
		w.Sender.ScreenName = w.SenderScreenName
	}
	if w.Recipient.ID == 0 {
		w.Recipient.ID = w.RecipientID
	}
	if w.Recipient.ScreenName == "" {
		w.Recipient.ScreenName = w.RecipientScreenName
	}

	*dm = DirectMessage{
		ID:        w.ID,
		IDStr:     w.IDStr,
		Text:      w.Text,
		Sender:    w.Sender,
		Recipient: w.Recipient,
		CreatedAt: w.CreatedAt,
	}
	return nil
}
