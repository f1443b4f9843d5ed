package service

import (
	"time"

	"github.com/shopspring/decimal"
	clientdomain "github.com/smallbiznis/incidentbilling/internal/client/domain"
	"github.com/smallbiznis/incidentbilling/internal/invoice/domain"
	ratedomain "github.com/smallbiznis/incidentbilling/internal/rate/domain"
)

// BuildStatement renders the billing summary for a resolved invoice, the
// rate it was billed against and the client. Pure arithmetic; the total
// is summed in a fixed order (fixed + web + mobile + email).
func BuildStatement(invoice domain.Invoice, rate ratedomain.Rate, client clientdomain.Client) domain.Statement {
	webCost := rate.CostPerIncidentWeb.Mul(decimal.NewFromInt(int64(invoice.TotalIncidentsWeb)))
	mobileCost := rate.CostPerIncidentMobile.Mul(decimal.NewFromInt(int64(invoice.TotalIncidentsMobile)))
	emailCost := rate.CostPerIncidentEmail.Mul(decimal.NewFromInt(int64(invoice.TotalIncidentsEmail)))

	totalCost := rate.FixedCost.
		Add(webCost).
		Add(mobileCost).
		Add(emailCost)

	return domain.Statement{
		BillingMonth: invoice.BillingMonth,
		BillingYear:  invoice.BillingYear,
		ClientID:     invoice.ClientID,
		ClientName:   client.Name,
		ClientPlan:   rate.Plan,
		DueDate:      invoice.PaymentDueDate.UTC().Format(time.RFC3339),
		TotalCost:    totalCost,
		FixedCost:    rate.FixedCost,
		TotalIncidents: domain.ChannelCounts{
			Web:    invoice.TotalIncidentsWeb,
			Mobile: invoice.TotalIncidentsMobile,
			Email:  invoice.TotalIncidentsEmail,
		},
		UnitCostPerIncident: domain.ChannelAmounts{
			Web:    rate.CostPerIncidentWeb,
			Mobile: rate.CostPerIncidentMobile,
			Email:  rate.CostPerIncidentEmail,
		},
		TotalCostPerIncident: domain.ChannelAmounts{
			Web:    webCost,
			Mobile: mobileCost,
			Email:  emailCost,
		},
	}
}
