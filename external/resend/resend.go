package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"
)

type ResendMailer struct {
	apiKey  string
	from    string
	client  *http.Client
	baseURL string
}

func NewResendMailer(apiKey, from string) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, errors.New("RESEND_API_KEY not set")
	}

	return &ResendMailer{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: "https://api.resend.com",
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html"`
}

// SendOrderConfirmation dispatches the buyer-facing confirmation for a
// finalized order, in plain-text and HTML variants.
func (m *ResendMailer) SendOrderConfirmation(ctx context.Context, order *model.Order) error {
	body := sendRequest{
		From:    m.from,
		To:      []string{order.CustomerEmail},
		Subject: "Order Confirmation",
		Text:    confirmationText(order),
		HTML:    confirmationHTML(order),
	}

	b, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.baseURL+"/emails",
		bytes.NewBuffer(b),
	)

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return errors.New(
			"failed to send confirmation email: " + buf.String(),
		)
	}

	return nil
}

func confirmationText(order *model.Order) string {
	var items strings.Builder
	for _, it := range order.LineItems {
		fmt.Fprintf(&items, "%s - %d x %.2f %s\n", it.Name, it.Quantity, it.UnitPrice, order.Currency)
	}

	return fmt.Sprintf(
		"Hello %s,\n\nThank you for your order!\n\nOrder Number: %s\nTotal: %.2f %s\n\nItems in your order:\n%s\nWe will notify you once your order is shipped.\n\nBest regards,\nThe Store Team",
		order.CustomerName, order.OrderNumber, order.TotalPrice, order.Currency, items.String(),
	)
}

func confirmationHTML(order *model.Order) string {
	var rows strings.Builder
	for _, it := range order.LineItems {
		fmt.Fprintf(&rows, `
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">
					<img src="%s" alt="%s" style="width: 50px; height: 50px; margin-right: 10px;"/>
					%s
				</td>
				<td style="padding: 8px; border: 1px solid #ddd; text-align: right;">
					%d x %.2f %s
				</td>
			</tr>
		`, it.ImageURL, it.Name, it.Name, it.Quantity, it.UnitPrice, order.Currency)
	}

	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
			<h2>Order Confirmation</h2>
			<p>Hello <strong>%s</strong>,</p>
			<p>Thank you for shopping with us! Your order has been received and is being processed.</p>
			<table style="width: 100%%; border-collapse: collapse; margin-top: 10px;">
				<tr>
					<td style="padding: 8px; border: 1px solid #ddd;"><strong>Order Number</strong></td>
					<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				</tr>
				<tr>
					<td style="padding: 8px; border: 1px solid #ddd;"><strong>Total</strong></td>
					<td style="padding: 8px; border: 1px solid #ddd;">%.2f %s</td>
				</tr>
				<tr>
					<td style="padding: 8px; border: 1px solid #ddd;"><strong>Order Date</strong></td>
					<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				</tr>
			</table>
			<h3>Items in Your Order</h3>
			<table style="width: 100%%; border-collapse: collapse; margin-top: 10px;">%s</table>
			<p>We will notify you once your order is shipped.</p>
			<p>Best regards,<br>The Store Team</p>
		</div>
	`, order.CustomerName, order.OrderNumber, order.TotalPrice, order.Currency,
		order.OrderDate.Format("2006-01-02"), rows.String())
}
