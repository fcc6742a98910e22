package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"rfq-offer-service/internal/domain/money"
	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/usecase/negotiation"
)

func printRFQ(w io.Writer, s *negotiation.Session) {
	r := s.RFQ()
	fmt.Fprintf(w, "%s  %s  [%s]\n", r.ID, r.Title, r.Status)
	fmt.Fprintf(w, "deliver to: %s\n", r.DeliveryAddress)
	fmt.Fprintf(w, "state: %s\n\n", s.Phase())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDESCRIPTION\tQTY\tUNIT")
	for _, l := range r.Lines {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", l.Index, l.Description, l.Quantity.String(), l.Unit)
	}
	_ = tw.Flush()

	if o := s.Canonical(); o != nil {
		fmt.Fprintln(w)
		printOffer(w, o)
	}
}

func printOffer(w io.Writer, o *offer.Offer) {
	fmt.Fprintf(w, "offer v%d  %s  total %s  (fee %s, %s)\n",
		o.VersionNumber, o.Status, money.Format(o.TotalAmount), money.Format(o.DeliveryFee), o.PaymentTerms)
	fmt.Fprintf(w, "window %s - %s, expires %s\n",
		o.DeliveryWindowStart.Format("2006-01-02 15:04"), o.DeliveryWindowEnd.Format("15:04"),
		o.ExpiresAt.Format("2006-01-02 15:04"))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tUNIT PRICE\tTOTAL\tNOTES")
	for _, lp := range o.LinePrices {
		notes := ""
		if lp.Notes != nil {
			notes = *lp.Notes
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", lp.LineIndex, money.Format(lp.UnitPrice), money.Format(lp.TotalPrice), notes)
	}
	_ = tw.Flush()
}

func printHistory(w io.Writer, h offer.History) {
	if len(h) == 0 {
		fmt.Fprintln(w, "no earlier versions")
		return
	}
	for i := range h {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printOffer(w, &h[i])
	}
}

func printLedger(w io.Writer, s *negotiation.Session) {
	r := s.RFQ()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tQTY\tUNIT PRICE\tSUBTOTAL\tDRIVING")
	for _, d := range s.Drafts() {
		line, _ := r.LineByIndex(d.LineIndex)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			d.LineIndex, line.Quantity.String(), d.UnitPriceText(), d.SubtotalText(), d.Driving())
	}
	_ = tw.Flush()

	form := s.Form()
	fmt.Fprintf(w, "delivery fee: %s\n", money.Format(form.DeliveryFee()))
	fmt.Fprintf(w, "total: %s\n", money.Format(s.Total()))
}
