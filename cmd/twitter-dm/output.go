package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	twitter "github.com/RyuaNerin/twitter-dm"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func (a *app) print(messages ...twitter.DirectMessage) error {
	switch a.format {
	case formatJSON:
		enc := jsoniter.NewEncoder(a.out)
		for _, dm := range messages {
			if err := enc.Encode(dm); err != nil {
				return err
			}
		}
		return nil

	case formatText:
		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tFROM\tTO\tWHEN\tTEXT")
		for _, dm := range messages {
			when := "-"
			if !dm.CreatedAt.IsZero() {
				when = humanize.Time(dm.CreatedAt)
			}
			fmt.Fprintf(tw, "%d\t@%s\t@%s\t%s\t%s\n", dm.ID, dm.Sender.ScreenName, dm.Recipient.ScreenName, when, dm.Text)
		}
		return tw.Flush()
	}

	return fmt.Errorf("unknown format %q", a.format)
}
