package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"rfq-offer-service/internal/infra/storeclient"
	"rfq-offer-service/internal/pkg/clock"
	"rfq-offer-service/internal/pkg/config"
	"rfq-offer-service/internal/pkg/jwt"
	"rfq-offer-service/internal/usecase/negotiation"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

var errUsage = errors.New("usage error")

func rfqIDArg(c *cli.Context) (uuid.UUID, error) {
	if c.NArg() != 1 {
		return uuid.Nil, fmt.Errorf("%w: expected exactly one <rfq-id>", errUsage)
	}
	id, err := uuid.Parse(c.Args().First())
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid rfq id: %v", errUsage, err)
	}
	return id, nil
}

// openSession builds a session against the HTTP store and opens the RFQ.
func openSession(c *cli.Context) (*negotiation.Session, error) {
	rfqID, err := rfqIDArg(c)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Negotiation.Location()
	if err != nil {
		return nil, err
	}
	session := negotiation.NewSession(newStore(cfg), clock.NewRealClock(), newLogger(cfg.Log), loc)
	if err := session.Open(c.Context, rfqID); err != nil {
		return nil, err
	}
	return session, nil
}

func newStore(cfg config.ClientConfig) *storeclient.Client {
	return storeclient.New(cfg.Store, &http.Client{Timeout: cfg.Store.Timeout}, newLogger(cfg.Log))
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "print the RFQ lines and your current offer",
		ArgsUsage: "<rfq-id>",
		Action: func(c *cli.Context) error {
			session, err := openSession(c)
			if err != nil {
				return err
			}
			printRFQ(c.App.Writer, session)
			return nil
		},
	}
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:      "history",
		Usage:     "print superseded versions of your offer",
		ArgsUsage: "<rfq-id>",
		Action: func(c *cli.Context) error {
			rfqID, err := rfqIDArg(c)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			history, err := newStore(cfg).FetchOfferHistory(c.Context, rfqID)
			if err != nil {
				return err
			}
			printHistory(c.App.Writer, history)
			return nil
		},
	}
}

func quoteCommand() *cli.Command {
	return &cli.Command{
		Name:      "quote",
		Usage:     "price a draft or revision and optionally submit it",
		ArgsUsage: "<rfq-id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "revise", Usage: "start from the current offer"},
			&cli.StringSliceFlag{Name: "unit-price", Usage: "IDX=VALUE, repeatable"},
			&cli.StringSliceFlag{Name: "subtotal", Usage: "IDX=VALUE, repeatable; applied after unit prices"},
			&cli.StringSliceFlag{Name: "note", Usage: "IDX=TEXT, repeatable"},
			&cli.StringFlag{Name: "delivery-fee"},
			&cli.StringFlag{Name: "delivery-date", Usage: "YYYY-MM-DD"},
			&cli.StringFlag{Name: "delivery-slot", Usage: "HH:MM-HH:MM"},
			&cli.StringFlag{Name: "payment-terms", Usage: "cod, net_7 or advance_100"},
			&cli.IntFlag{Name: "expiry", Usage: "hours: 24, 48, 72 or 168"},
			&cli.StringFlag{Name: "notes"},
			&cli.BoolFlag{Name: "submit", Usage: "validate and send the offer"},
		},
		Action: func(c *cli.Context) error {
			session, err := openSession(c)
			if err != nil {
				return err
			}
			if c.Bool("revise") {
				if err := session.BeginRevision(c.Context); err != nil {
					return err
				}
			}
			if err := applyEdits(c, session); err != nil {
				return err
			}
			printLedger(c.App.Writer, session)

			if !c.Bool("submit") {
				return nil
			}
			if err := session.Submit(c.Context); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer)
			printRFQ(c.App.Writer, session)
			return nil
		},
	}
}

func applyEdits(c *cli.Context, s *negotiation.Session) error {
	for _, e := range []struct {
		flag  string
		apply func(int, string) error
	}{
		{"unit-price", s.SetUnitPrice},
		{"subtotal", s.SetSubtotal},
		{"note", s.SetNote},
	} {
		for _, raw := range c.StringSlice(e.flag) {
			idx, value, err := parseIndexed(raw)
			if err != nil {
				return fmt.Errorf("--%s: %w", e.flag, err)
			}
			if err := e.apply(idx, value); err != nil {
				return fmt.Errorf("--%s %s: %w", e.flag, raw, err)
			}
		}
	}

	for _, e := range []struct {
		flag  string
		apply func(string) error
	}{
		{"delivery-fee", s.SetDeliveryFee},
		{"delivery-date", s.SetDeliveryDate},
		{"delivery-slot", s.SetDeliverySlot},
		{"payment-terms", s.SetPaymentTerms},
		{"notes", s.SetNotes},
	} {
		if c.IsSet(e.flag) {
			if err := e.apply(c.String(e.flag)); err != nil {
				return fmt.Errorf("--%s: %w", e.flag, err)
			}
		}
	}
	if c.IsSet("expiry") {
		if err := s.SetExpiry(c.Int("expiry")); err != nil {
			return fmt.Errorf("--expiry: %w", err)
		}
	}
	return nil
}

// parseIndexed splits "IDX=VALUE". The value may itself contain '='.
func parseIndexed(raw string) (int, string, error) {
	idxText, value, ok := strings.Cut(raw, "=")
	if !ok {
		return 0, "", fmt.Errorf("%w: expected IDX=VALUE, got %q", errUsage, raw)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(idxText))
	if err != nil || idx < 0 {
		return 0, "", fmt.Errorf("%w: invalid line index %q", errUsage, idxText)
	}
	return idx, value, nil
}

func declineCommand() *cli.Command {
	return &cli.Command{
		Name:      "decline",
		Usage:     "decline the RFQ; no further offers can be made",
		ArgsUsage: "<rfq-id>",
		Action: func(c *cli.Context) error {
			session, err := openSession(c)
			if err != nil {
				return err
			}
			if err := session.Decline(c.Context); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "declined")
			return nil
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "mint a development bearer token signed with $JWT_SECRET",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "supplier", Required: true, Usage: "supplier account uuid"},
			&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return fmt.Errorf("%w: JWT_SECRET is not set", errUsage)
			}
			supplierID, err := uuid.Parse(c.String("supplier"))
			if err != nil {
				return fmt.Errorf("%w: invalid --supplier: %v", errUsage, err)
			}
			token, err := jwt.NewService(cfg.JWTSecret, c.Duration("ttl")).GenerateToken(supplierID, jwt.RoleSupplier)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}
