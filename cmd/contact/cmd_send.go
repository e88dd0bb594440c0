package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shri8977/FUTURE-FS-01/pkg/contactclient"

	"github.com/spf13/cobra"
)

var (
	baseURL     string
	name        string
	email       string
	message     string
	messageFile string
	timeout     time.Duration
	quiet       bool
)

// errNotSent makes the process exit non-zero after the status line is printed
var errNotSent = errors.New("message not sent")

// rootCmd is the contact form client
var rootCmd = &cobra.Command{
	Use:           "contact",
	Short:         "Submit the portfolio contact form from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// sendCmd submits one message
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a message through the contact form",
	Long: `Send a message through the portfolio contact form.

The same checks as the web form run first: every field must be filled in and
the email must look like local@domain.tld. Use --message-file - to read the
message from stdin.`,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&baseURL, "url", envOr("CONTACT_URL", "http://localhost:3000"), "Base URL of the portfolio site")
	sendCmd.Flags().StringVar(&name, "name", "", "Your name")
	sendCmd.Flags().StringVar(&email, "email", "", "Your email address")
	sendCmd.Flags().StringVarP(&message, "message", "m", "", "Message text")
	sendCmd.Flags().StringVarP(&messageFile, "message-file", "f", "", "Read the message from a file (- for stdin)")
	sendCmd.Flags().DurationVar(&timeout, "timeout", contactclient.DefaultTimeout, "Request timeout")
	sendCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the final status")
	sendCmd.MarkFlagsMutuallyExclusive("message", "message-file")

	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	if messageFile != "" {
		text, err := readMessage(cmd.InOrStdin(), messageFile)
		if err != nil {
			return err
		}
		message = text
	}

	out := cmd.OutOrStdout()
	var opts []contactclient.Option
	opts = append(opts, contactclient.WithTimeout(timeout))
	if !quiet {
		opts = append(opts, contactclient.WithObserver(func(s contactclient.Status) {
			if s.State == contactclient.StateSending {
				fmt.Fprintln(out, s.Text)
			}
		}))
	}

	client := contactclient.New(baseURL, opts...)
	defer client.Close()

	form := &contactclient.Form{Name: name, Email: email, Message: message}
	st := client.Submit(cmd.Context(), form)

	fmt.Fprintln(out, st.Text)
	if st.State != contactclient.StateSuccess {
		return errNotSent
	}
	return nil
}

func readMessage(stdin io.Reader, path string) (string, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read message: %w", err)
	}
	return strings.TrimRight(string(raw), "\r\n"), nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
