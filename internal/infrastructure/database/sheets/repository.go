// Package sheets implements the catalogue repository on top of a
// Google spreadsheet, the system's single source of truth. The first
// row is a header; columns are matched by name, so admins may reorder
// them freely.
package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"dress-catalogue/internal/domain/entity"
	domainErrors "dress-catalogue/internal/domain/errors"
)

// headerAliases maps legacy column names, as found in older sheets, to
// their canonical names.
var headerAliases = map[string]string{
	"discount": "discount_percent",
	"likes":    "interest_count",
}

// header maps canonical column names to zero-based column indexes.
type header map[string]int

type Repository struct {
	rows   RowsAPI
	logger *zap.Logger
}

func NewRepository(rows RowsAPI, logger *zap.Logger) *Repository {
	return &Repository{
		rows:   rows,
		logger: logger,
	}
}

// sheetRow pairs a parsed item with its 1-based sheet row.
type sheetRow struct {
	item  *entity.Item
	index int64
}

func (r *Repository) FindAll(ctx context.Context) ([]*entity.Item, error) {
	rows, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*entity.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.item)
	}
	return items, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	rows, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.item.ID == id {
			return row.item, nil
		}
	}
	return nil, domainErrors.ErrItemNotFound
}

func (r *Repository) Create(ctx context.Context, item *entity.Item) (*entity.Item, error) {
	rows, head, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if head == nil {
		return nil, fmt.Errorf("%w: sheet has no header row", domainErrors.ErrDatabaseError)
	}

	var maxID int64
	for _, row := range rows {
		if row.item.ID > maxID {
			maxID = row.item.ID
		}
	}
	item.ID = maxID + 1

	if err := r.rows.Append(ctx, writeRow(head, item)); err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
	}
	return item, nil
}

func (r *Repository) Update(ctx context.Context, item *entity.Item) (*entity.Item, error) {
	rows, head, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.item.ID != item.ID {
			continue
		}
		if err := r.rows.UpdateRow(ctx, row.index, writeRow(head, item)); err != nil {
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
		}
		return item, nil
	}
	return nil, domainErrors.ErrItemNotFound
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	rows, _, err := r.load(ctx)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if row.item.ID == id {
			if err := r.rows.DeleteRow(ctx, row.index); err != nil {
				return fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
			}
			return nil
		}
	}
	return domainErrors.ErrItemNotFound
}

// load reads the whole sheet. Rows that fail to parse are skipped with
// a warning so one bad cell cannot take the catalogue down.
func (r *Repository) load(ctx context.Context) ([]sheetRow, header, error) {
	values, err := r.rows.ReadAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
	}
	if len(values) == 0 {
		return nil, nil, nil
	}

	head, err := parseHeader(values[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
	}

	rows := make([]sheetRow, 0, len(values)-1)
	for i, raw := range values[1:] {
		index := int64(i + 2) // 1-based, after the header
		item, err := parseItem(head, raw)
		if err != nil {
			r.logger.Warn("skipping malformed sheet row",
				zap.Int64("row", index),
				zap.Error(err),
			)
			continue
		}
		rows = append(rows, sheetRow{item: item, index: index})
	}
	return rows, head, nil
}

func parseHeader(raw []any) (header, error) {
	head := make(header, len(raw))
	for i, cell := range raw {
		name := strings.ToLower(strings.TrimSpace(asString(cell)))
		if canonical, ok := headerAliases[name]; ok {
			name = canonical
		}
		if name != "" {
			head[name] = i
		}
	}

	for _, required := range []string{"id", "name", "image_url", "price"} {
		if _, ok := head[required]; !ok {
			return nil, fmt.Errorf("header is missing the %q column", required)
		}
	}
	return head, nil
}

func parseItem(head header, raw []any) (*entity.Item, error) {
	id, err := parseInt(cell(head, raw, "id"))
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("bad id: %v", cell(head, raw, "id"))
	}

	name := strings.TrimSpace(asString(cell(head, raw, "name")))
	if name == "" {
		return nil, fmt.Errorf("empty name")
	}

	price, err := parsePrice(cell(head, raw, "price"))
	if err != nil || price.IsNegative() {
		return nil, fmt.Errorf("bad price: %v", cell(head, raw, "price"))
	}

	discount, err := parseOptionalInt(cell(head, raw, "discount_percent"))
	if err != nil || discount < 0 || discount > 100 {
		return nil, fmt.Errorf("bad discount_percent: %v", cell(head, raw, "discount_percent"))
	}

	interest, err := parseOptionalInt(cell(head, raw, "interest_count"))
	if err != nil || interest < 0 {
		return nil, fmt.Errorf("bad interest_count: %v", cell(head, raw, "interest_count"))
	}

	sold, err := parseBool(cell(head, raw, "sold"))
	if err != nil {
		return nil, fmt.Errorf("bad sold flag: %v", cell(head, raw, "sold"))
	}

	return &entity.Item{
		ID:              id,
		Name:            name,
		ImageURL:        strings.TrimSpace(asString(cell(head, raw, "image_url"))),
		Price:           price,
		DiscountPercent: int(discount),
		Sold:            sold,
		InterestCount:   int(interest),
	}, nil
}

// writeRow lays item fields out in the sheet's own column order.
// Columns the repository does not own, expected_price included, are
// blanked: every derived value is recomputed on read, never stored.
func writeRow(head header, item *entity.Item) []any {
	width := 0
	for _, idx := range head {
		if idx+1 > width {
			width = idx + 1
		}
	}

	row := make([]any, width)
	for i := range row {
		row[i] = ""
	}

	set := func(column string, value any) {
		if idx, ok := head[column]; ok {
			row[idx] = value
		}
	}
	set("id", strconv.FormatInt(item.ID, 10))
	set("name", item.Name)
	set("image_url", item.ImageURL)
	set("price", item.Price.String())
	set("discount_percent", strconv.Itoa(item.DiscountPercent))
	set("sold", strings.ToUpper(strconv.FormatBool(item.Sold)))
	set("interest_count", strconv.Itoa(item.InterestCount))
	return row
}

func cell(head header, raw []any, column string) any {
	idx, ok := head[column]
	if !ok || idx >= len(raw) {
		return nil
	}
	return raw[idx]
}

func asString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

func parseInt(v any) (int64, error) {
	s := strings.TrimSpace(asString(v))
	if s == "" {
		return 0, fmt.Errorf("empty cell")
	}
	return strconv.ParseInt(s, 10, 64)
}

// parseOptionalInt treats a missing or empty cell as zero.
func parseOptionalInt(v any) (int64, error) {
	if strings.TrimSpace(asString(v)) == "" {
		return 0, nil
	}
	return parseInt(v)
}

func parsePrice(v any) (decimal.Decimal, error) {
	s := strings.TrimSpace(asString(v))
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty cell")
	}
	// Tolerate thousands separators typed into the sheet by hand.
	return decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
}

func parseBool(v any) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(asString(v))) {
	case "", "false", "0", "no":
		return false, nil
	case "true", "1", "yes", "sold":
		return true, nil
	default:
		return false, fmt.Errorf("unrecognized boolean %q", asString(v))
	}
}
