package cli

import (
	"github.com/spf13/cobra"

	"github.com/Deepika-251004/shampoo-website/client"
	"github.com/Deepika-251004/shampoo-website/render"
)

// NewContactCommand creates the contact command.
func NewContactCommand(rootOpts *RootOptions) *cobra.Command {
	var msg client.ContactMessage

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message through the contact form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := render.NewText(cmd.OutOrStdout())
			submitContact(cmd.Context(), newAPIClient(rootOpts), view, msg)
			return view.Err()
		},
	}

	cmd.Flags().StringVar(&msg.Name, "name", "", "your name")
	cmd.Flags().StringVar(&msg.Email, "email", "", "your email address")
	cmd.Flags().StringVarP(&msg.Message, "message", "m", "", "the message")

	return cmd
}
