package orderemail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"supplements-backend/lib/telemetry"
	"supplements-backend/services/supplements"
	"text/tabwriter"
	"time"

	"github.com/jordan-wright/email"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("supplements.lib.orderemail")

type SmtpConfig struct {
	Server       string `json:"server"`
	Port         int    `json:"port"`
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

func formatPrice(price *float64) string {
	if price == nil {
		return "unknown"
	}
	return fmt.Sprintf("$%.2f", *price)
}

// Render returns the order as a plain text shopping list, grouped by store.
func Render(order supplements.Order) string {
	var out strings.Builder
	fmt.Fprintf(&out, "Order %s\n", order.ID)
	fmt.Fprintf(&out, "Placed %s\n\n", order.OrderedAt.Format(time.RFC1123))

	var stores []string
	byStore := map[string][]supplements.CartItem{}
	for _, item := range order.Items {
		if _, ok := byStore[item.StoreName]; !ok {
			stores = append(stores, item.StoreName)
		}
		byStore[item.StoreName] = append(byStore[item.StoreName], item)
	}

	for _, store := range stores {
		fmt.Fprintf(&out, "%s\n", store)
		writer := tabwriter.NewWriter(&out, 0, 4, 2, ' ', 0)
		for _, item := range byStore[store] {
			fmt.Fprintf(
				writer,
				"  %s\tx%d\t%s\t$%.2f\n",
				item.SupplementName,
				item.Quantity,
				formatPrice(item.Price),
				item.Subtotal(),
			)
		}
		writer.Flush()
		out.WriteString("\n")
	}

	if len(order.Items) == 0 {
		out.WriteString("(no items)\n\n")
	}
	fmt.Fprintf(&out, "Total: $%.2f\n", order.Total())
	return out.String()
}

// Send emails the rendered order to the given addresses.
func Send(ctx context.Context, cfg SmtpConfig, to []string, order supplements.Order) error {
	_, span := tracer.Start(ctx, "Send")
	defer span.End()

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Supplements <%s>", cfg.EmailAddress)
	mail.To = to
	mail.Subject = fmt.Sprintf("Shopping list for %s", order.OrderedAt.Format("Jan 2, 2006"))
	mail.Text = []byte(Render(order))

	addr := fmt.Sprintf("%s:%d", cfg.Server, cfg.Port)
	var auth smtp.Auth
	if cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.EmailAddress, cfg.Password, cfg.Server)
	}
	err := mail.Send(addr, auth)
	if err != nil && auth != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		err = mail.Send(addr, nil)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send email")
		return err
	}
	return nil
}
