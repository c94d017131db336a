package google

import (
	"context"
	"fmt"

	"github.com/finpercent/finpercent/internal/money"
	"github.com/finpercent/finpercent/pkg/allocation"
	"github.com/finpercent/finpercent/pkg/user"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const allocationSheet = "Allocation"

type Spreadsheet struct {
	Id  string
	Url string
}

type Service interface {
	ExportAllocation(ctx context.Context, breakdown allocation.Breakdown) (Spreadsheet, error)
}

type ServiceImpl struct {
	auth *GoogleAuth
	// extra client options, tests point the client at a local server
	options []option.ClientOption
}

func NewService(auth *GoogleAuth, options ...option.ClientOption) *ServiceImpl {
	return &ServiceImpl{auth: auth, options: options}
}

// ExportAllocation creates a spreadsheet in the current user's Drive with one
// row per category of the breakdown.
func (s *ServiceImpl) ExportAllocation(ctx context.Context, breakdown allocation.Breakdown) (Spreadsheet, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Spreadsheet{}, fmt.Errorf("failed to get current user: %w", err)
	}
	service, err := s.sheetsService(ctx, userId)
	if err != nil {
		return Spreadsheet{}, err
	}

	created, err := service.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: fmt.Sprintf("FinPercent %s allocation of %s", breakdown.Method, money.Fixed(breakdown.Amount, money.DisplayPlaces)),
		},
		Sheets: []*sheets.Sheet{{Properties: &sheets.SheetProperties{Title: allocationSheet}}},
	}).Context(ctx).Do()
	if err != nil {
		log.Errorf("unable to create spreadsheet: %v", err)
		return Spreadsheet{}, fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	_, err = service.Spreadsheets.Values.Update(created.SpreadsheetId, allocationSheet+"!A1", &sheets.ValueRange{
		Values: allocationValues(breakdown),
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		log.Errorf("unable to write allocation rows: %v", err)
		return Spreadsheet{}, fmt.Errorf("unable to write allocation rows: %w", err)
	}
	log.Debugf("exported %s allocation to spreadsheet %s", breakdown.Method, created.SpreadsheetId)
	return Spreadsheet{Id: created.SpreadsheetId, Url: created.SpreadsheetUrl}, nil
}

func (s *ServiceImpl) sheetsService(ctx context.Context, userId int) (*sheets.Service, error) {
	client, err := s.auth.client(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve Google auth client: %w", err)
	}
	if client == nil {
		log.Debug("user is unauthenticated, authentication is required")
		return nil, ErrUnauthenticated
	}
	options := append([]option.ClientOption{option.WithHTTPClient(client)}, s.options...)
	service, err := sheets.NewService(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client: %w", err)
	}
	return service, nil
}

// allocationValues lays the breakdown out as a header, one row per node and a
// closing total row.
func allocationValues(breakdown allocation.Breakdown) [][]interface{} {
	rows := allocation.Flatten(breakdown)
	values := make([][]interface{}, 0, len(rows)+2)
	values = append(values, []interface{}{"Category", "Depth", "Percentage", "Share of total", "Amount"})
	for _, row := range rows {
		values = append(values, []interface{}{
			row.PathString(),
			row.Depth,
			money.Display(row.Percentage),
			money.Display(row.ShareOfTotal),
			money.Display(row.Amount),
		})
	}
	values = append(values, []interface{}{"Total", 0, 100.0, 100.0, money.Display(breakdown.Amount)})
	return values
}
