package usecase

import (
	"context"
	"fmt"

	"github.com/ticketswapper/ticketswapper/internal/pkg/logger"
	"github.com/ticketswapper/ticketswapper/internal/pkg/metrics"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/internal/utils"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
)

const registryProvider = "pnr-registry"

// ValidatePNR checks a PNR against the external registry: format, exact
// PNR match and passenger-name match. The result carries the matched trip
// details so the listing flow can copy them onto the ticket.
func (u *MarketplaceUC) ValidatePNR(ctx context.Context, req *models.ValidatePNRRequest) (*models.PNRValidation, error) {
	pnr := utils.NormalizePNR(req.PNR)
	if !utils.ValidPNRLength(pnr) {
		metrics.PNRValidations.WithLabelValues("invalid_format").Inc()
		return nil, marketplace.ErrInvalidPNRFormat
	}

	records, err := u.gw.FetchPNRRecords(ctx)
	if err != nil {
		metrics.PNRValidations.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to fetch PNR records: %w", err)
	}

	var match *models.PNRRecord
	for i := range records {
		if utils.NormalizePNR(records[i].PNRNumber) == pnr {
			match = &records[i]
			break
		}
	}
	if match == nil {
		metrics.PNRValidations.WithLabelValues("not_found").Inc()
		return nil, marketplace.ErrPNRNotFound
	}

	if !utils.NamesMatch(match.PassengerName, req.PassengerName) {
		metrics.PNRValidations.WithLabelValues("name_mismatch").Inc()
		logger.Warn("Passenger name mismatch on PNR validation",
			logger.String("pnr", pnr))
		return nil, marketplace.ErrNameMismatch
	}

	metrics.PNRValidations.WithLabelValues("verified").Inc()

	return &models.PNRValidation{
		PNR:           pnr,
		PassengerName: match.PassengerName,
		Operator:      match.BusOperator,
		Origin:        match.SourceLocation,
		Destination:   match.DestLocation,
		DepartureDate: match.DepartureDate,
		DepartureTime: match.DepartureTime,
		SeatNumber:    match.SeatNumber,
		FacePrice:     match.TicketPrice,
		Provider:      registryProvider,
		Confidence:    100,
	}, nil
}
