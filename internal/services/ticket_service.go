package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// BookingReader loads one booking.
type BookingReader interface {
	GetByID(ctx context.Context, id int64) (models.Booking, error)
}

// TicketService renders a booking as a one-page PDF e-ticket.
type TicketService struct {
	Bookings BookingReader
}

func (s TicketService) bookings() BookingReader {
	if s.Bookings != nil {
		return s.Bookings
	}
	return repositories.BookingRepository{}
}

// Generate returns the PDF bytes and a download filename.
func (s TicketService) Generate(ctx context.Context, bookingID int64) ([]byte, string, error) {
	b, err := s.bookings().GetByID(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := buildTicketPDF(b)
	if err != nil {
		return nil, "", domain.Internal(err)
	}
	return pdf, fmt.Sprintf("ticket-%d.pdf", b.ID), nil
}

func buildTicketPDF(b models.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	// gofpdf core fonts are cp1252; the route arrow is written as "->"
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking        : #%d", b.ID),
		fmt.Sprintf("Customer       : #%d", b.CustomerID),
		fmt.Sprintf("Route          : %s -> %s", safe(b.RouteFrom, "-"), safe(b.RouteTo, "-")),
		fmt.Sprintf("Date / Time    : %s %s", safe(b.TripDate, "-"), safe(b.TripTime, "")),
		fmt.Sprintf("Fare           : %s", utils.FormatAmount(b.Fare)),
		fmt.Sprintf("Payment        : %s (%s)", safe(b.PaymentStatus, "-"), safe(b.PaymentMethod, "-")),
		fmt.Sprintf("Ticket code    : TCK-%d", b.ID),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this ticket at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func safe(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}
