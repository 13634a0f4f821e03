package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"personal-site/internal/client"
	"personal-site/internal/config"
	"personal-site/internal/view"
)

type rootOptions struct {
	server  string
	timeout time.Duration
}

func newRootCmd(cfg *config.ClientConfig) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "site",
		Short:        "Terminal client for the personal site API",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.server, "server", cfg.ServerHostname, "API base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", cfg.Timeout, "HTTP client timeout (0 disables)")

	root.AddCommand(newAboutCmd(opts), newMessagesCmd(opts), newPostCmd(opts))
	return root
}

func (o *rootOptions) client() *client.Client {
	return client.New(o.server, &http.Client{Timeout: o.timeout})
}

func newAboutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show the about me page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := view.NewAboutView(opts.client())
			if err := mountAndWait(cmd.Context(), v); err != nil {
				return err
			}
			defer v.Unmount()
			return v.Render(cmd.OutOrStdout())
		},
	}
}

func newMessagesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "messages",
		Short: "List every message left on the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := view.NewMessagesView(opts.client())
			if err := mountAndWait(cmd.Context(), v); err != nil {
				return err
			}
			defer v.Unmount()
			return v.Render(cmd.OutOrStdout())
		},
	}
}

func newPostCmd(opts *rootOptions) *cobra.Command {
	var name, message string
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Leave a new message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := view.NewMessagesView(opts.client())
			if err := mountAndWait(cmd.Context(), v); err != nil {
				return err
			}
			defer v.Unmount()
			if _, err := v.Submit(cmd.Context(), name, message); err != nil {
				return err
			}
			return v.Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&message, "message", "", "the message to leave")
	return cmd
}

type mountable interface {
	Mount(ctx context.Context)
	Unmount()
	Done() <-chan struct{}
}

// mountAndWait monta la vista y espera la carga inicial. Una interrupción
// desmonta la vista antes de que llegue la respuesta.
func mountAndWait(ctx context.Context, v mountable) error {
	if ctx == nil {
		ctx = context.Background()
	}
	v.Mount(ctx)
	select {
	case <-v.Done():
		return nil
	case <-ctx.Done():
		v.Unmount()
		return errors.Join(errInterrupted, ctx.Err())
	}
}

var errInterrupted = errors.New("interrupted before the page loaded")
