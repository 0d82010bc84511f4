package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	twitter "github.com/RyuaNerin/twitter-dm"
)

type listFunc func(c *twitter.Client, ctx context.Context, opt *twitter.PageOptions) ([]twitter.DirectMessage, error)

func (a *app) newListCommand(use, short string, list listFunc) *cobra.Command {
	var opt twitter.PageOptions

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := list(a.client, cmd.Context(), &opt)
			if err != nil {
				return a.fail(err)
			}
			return a.print(messages...)
		},
	}

	cmd.Flags().IntVar(&opt.Page, "page", twitter.DefaultPage, "page number")
	cmd.Flags().IntVar(&opt.Count, "count", twitter.DefaultCount, "messages per page")
	cmd.Flags().Int64Var(&opt.SinceID, "since-id", 0, "only messages newer than this id")
	cmd.Flags().Int64Var(&opt.MaxID, "max-id", 0, "only messages older than or equal to this id")

	return cmd
}

func (a *app) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single direct message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			dm, err := a.client.GetDirectMessage(cmd.Context(), id)
			if err != nil {
				return a.fail(err)
			}
			return a.print(dm)
		},
	}
}

func (a *app) newSendCommand() *cobra.Command {
	var (
		screenName string
		userID     int64
	)

	cmd := &cobra.Command{
		Use:   "send <text>...",
		Short: "Send a direct message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to := twitter.Recipient{
				ScreenName: strings.TrimPrefix(screenName, "@"),
				UserID:     userID,
			}

			dm, err := a.client.SendDirectMessage(cmd.Context(), to, strings.Join(args, " "))
			if err != nil {
				return a.fail(err)
			}
			return a.print(dm)
		},
	}

	cmd.Flags().StringVar(&screenName, "screen-name", "", "recipient screen name")
	cmd.Flags().Int64Var(&userID, "user-id", 0, "recipient user id")
	cmd.MarkFlagsOneRequired("screen-name", "user-id")
	cmd.MarkFlagsMutuallyExclusive("screen-name", "user-id")

	return cmd
}

func (a *app) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a direct message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			dm, err := a.client.DeleteDirectMessage(cmd.Context(), id)
			if err != nil {
				return a.fail(err)
			}
			return a.print(dm)
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := cast.ToInt64E(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
