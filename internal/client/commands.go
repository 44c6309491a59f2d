// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/spf13/cobra"
)

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "blog",
		Short:         "Command-line client for the go-blog server",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.accountCommand(),
		a.listCommand(),
		a.getCommand(),
		a.createCommand(),
		a.updateCommand(),
		a.deleteCommand(),
		a.versionCommand(),
	)

	return root
}

func credentialFlags(cmd *cobra.Command, creds *models.Credentials) {
	cmd.Flags().StringVar(&creds.Email, "email", "", "account e-mail address")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
}

func (a *App) registerCommand() *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if creds.ConfirmPassword == "" {
				creds.ConfirmPassword = creds.Password
			}
			if err := a.blog.Register(cmd.Context(), creds); err != nil {
				return err
			}
			cmd.Println("success! your account is created")
			return nil
		},
	}
	credentialFlags(cmd, &creds)
	cmd.Flags().StringVar(&creds.ConfirmPassword, "confirm-password", "", "password confirmation (defaults to --password)")

	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.blog.Login(cmd.Context(), creds); err != nil {
				return err
			}
			cmd.Println("success! you are logged in")
			return nil
		},
	}
	credentialFlags(cmd, &creds)

	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.blog.Logout(cmd.Context()); err != nil {
				return err
			}
			// the server may not expire a cookie it no longer knows
			a.blog.SetSessionToken("")
			cmd.Println("success! you are logged out")
			return nil
		},
	}
}

func (a *App) accountCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "account",
		Aliases: []string{"whoami"},
		Short:   "Show the logged-in account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.blog.Account(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("id: %d\nemail: %s\ncreated: %s\n", user.UserID, user.Email, user.CreatedAt.Format(time.RFC3339))
			return nil
		},
	}
}

func (a *App) listCommand() *cobra.Command {
	var req models.ListPostsRequest

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			posts, err := a.blog.ListPosts(cmd.Context(), req)
			if err != nil {
				return err
			}
			if len(posts) == 0 {
				cmd.Println("no posts found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tAUTHOR\tURL\tTITLE\tCREATED")
			for _, p := range posts {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n", p.PostID, p.UserID, p.URL, p.Title, p.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
	cmd.Flags().Uint64Var(&req.Limit, "limit", 0, "maximum number of posts (server default when 0)")
	cmd.Flags().Uint64Var(&req.Offset, "offset", 0, "number of posts to skip")

	return cmd
}

func (a *App) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postID, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			post, err := a.blog.GetPost(cmd.Context(), postID)
			if err != nil {
				return err
			}
			printPost(cmd, post)
			return nil
		},
	}
}

func (a *App) createCommand() *cobra.Command {
	var req models.PostRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			post, err := a.blog.CreatePost(cmd.Context(), req)
			if err != nil {
				return err
			}
			printPost(cmd, post)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.URL, "url", "", "link of the post")
	cmd.Flags().StringVar(&req.Title, "title", "", "optional title")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func (a *App) updateCommand() *cobra.Command {
	var req models.PostRequest

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postID, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			post, err := a.blog.UpdatePost(cmd.Context(), postID, req)
			if err != nil {
				return err
			}
			printPost(cmd, post)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.URL, "url", "", "new link of the post")
	cmd.Flags().StringVar(&req.Title, "title", "", "new title")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func (a *App) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postID, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			if err = a.blog.DeletePost(cmd.Context(), postID); err != nil {
				return err
			}
			cmd.Println("post deleted")
			return nil
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, err := a.blog.ServerVersion(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Println(version)
			return nil
		},
	}
}

func parsePostID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid post id %q", raw)
	}
	return id, nil
}

func printPost(cmd *cobra.Command, p models.Post) {
	cmd.Printf("id: %d\nauthor: %d\nurl: %s\n", p.PostID, p.UserID, p.URL)
	if p.Title != "" {
		cmd.Printf("title: %s\n", p.Title)
	}
	cmd.Printf("created: %s\nupdated: %s\n", p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339))
}
