package integration

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Header cells of the organizations sheet. Values are matched after
// trimming, so a stray trailing space in the spreadsheet does not break
// the import.
const (
	colDomain       = "Домен"
	colName         = "Название"
	colCategory     = "Категория"
	colType         = "Тип"
	colPhone        = "Телефон"
	colEmail        = "Email"
	colWebsite      = "Сайт"
	colAddress      = "Адрес"
	colWorkingHours = "Режим работы"
	colBotToken     = "Токен бота"
	colChatID       = "Chat ID"
	colTitle        = "Title"
	colDescription  = "Description"
	colH1           = "H1"
	colAbout        = "О нас"

	colProductName        = "Товар"
	colProductDescription = "Описание товара"
	colProductPrice       = "Цена"
	colProductCategory    = "Категория товара"
	colProductImage       = "Изображение"

	colPromotionTitle       = "Акция"
	colPromotionDescription = "Описание акции"
	colPromotionValidUntil  = "Действует до"
)

// OrganizationRow is one organization parsed from the master sheet
type OrganizationRow struct {
	RowNumber    int
	Domain       string
	Name         string
	Category     string
	Type         string
	Phone        string
	Email        string
	Website      string
	Address      string
	WorkingHours string
	BotToken     string
	ChatID       string
	Title        string
	Description  string
	H1           string
	About        string
}

// ProductRow is one product parsed from the goods sheet
type ProductRow struct {
	RowNumber   int
	Domain      string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	ImageURL    string
}

// PromotionRow is one promotion parsed from the promotions sheet
type PromotionRow struct {
	RowNumber   int
	Domain      string
	Title       string
	Description string
	ValidUntil  *time.Time
}

type headerIndex map[string]int

func buildHeaderIndex(header []interface{}) headerIndex {
	idx := make(headerIndex, len(header))
	for i, cell := range header {
		name := strings.TrimSpace(cellString(cell))
		if name == "" {
			continue
		}
		if _, taken := idx[name]; !taken {
			idx[name] = i
		}
	}
	return idx
}

func (h headerIndex) get(row []interface{}, column string) string {
	i, ok := h[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(cellString(row[i]))
}

func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ParseOrganizationRows converts raw sheet values into typed rows.
// The first row must be the header; rows without a domain are skipped.
func ParseOrganizationRows(values [][]interface{}) ([]OrganizationRow, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}

	idx := buildHeaderIndex(values[0])
	for _, required := range []string{colDomain, colName} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("sheet is missing required column %q", required)
		}
	}

	rows := make([]OrganizationRow, 0, len(values)-1)
	for i, raw := range values[1:] {
		domain := CleanDomain(idx.get(raw, colDomain))
		if domain == "" {
			continue
		}

		rows = append(rows, OrganizationRow{
			RowNumber:    i + 2,
			Domain:       domain,
			Name:         idx.get(raw, colName),
			Category:     idx.get(raw, colCategory),
			Type:         idx.get(raw, colType),
			Phone:        idx.get(raw, colPhone),
			Email:        idx.get(raw, colEmail),
			Website:      idx.get(raw, colWebsite),
			Address:      idx.get(raw, colAddress),
			WorkingHours: idx.get(raw, colWorkingHours),
			BotToken:     idx.get(raw, colBotToken),
			ChatID:       idx.get(raw, colChatID),
			Title:        idx.get(raw, colTitle),
			Description:  idx.get(raw, colDescription),
			H1:           idx.get(raw, colH1),
			About:        idx.get(raw, colAbout),
		})
	}
	return rows, nil
}

// ParseProductRows converts raw goods sheet values into typed rows
func ParseProductRows(values [][]interface{}) []ProductRow {
	if len(values) < 2 {
		return nil
	}

	idx := buildHeaderIndex(values[0])
	rows := make([]ProductRow, 0, len(values)-1)
	for i, raw := range values[1:] {
		domain := CleanDomain(idx.get(raw, colDomain))
		name := idx.get(raw, colProductName)
		if domain == "" || name == "" {
			continue
		}

		rows = append(rows, ProductRow{
			RowNumber:   i + 2,
			Domain:      domain,
			Name:        name,
			Description: idx.get(raw, colProductDescription),
			Price:       ParsePrice(idx.get(raw, colProductPrice)),
			Category:    idx.get(raw, colProductCategory),
			ImageURL:    idx.get(raw, colProductImage),
		})
	}
	return rows
}

// ParsePromotionRows converts raw promotions sheet values into typed rows
func ParsePromotionRows(values [][]interface{}) []PromotionRow {
	if len(values) < 2 {
		return nil
	}

	idx := buildHeaderIndex(values[0])
	rows := make([]PromotionRow, 0, len(values)-1)
	for i, raw := range values[1:] {
		domain := CleanDomain(idx.get(raw, colDomain))
		title := idx.get(raw, colPromotionTitle)
		if domain == "" || title == "" {
			continue
		}

		rows = append(rows, PromotionRow{
			RowNumber:   i + 2,
			Domain:      domain,
			Title:       title,
			Description: idx.get(raw, colPromotionDescription),
			ValidUntil:  parseSheetDate(idx.get(raw, colPromotionValidUntil)),
		})
	}
	return rows
}

// CleanDomain normalizes a domain cell: protocol and path are stripped,
// the rest is lowercased
func CleanDomain(raw string) string {
	d := strings.TrimSpace(strings.ToLower(raw))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	return d
}

// ParsePrice extracts a decimal price from free-form sheet text such as
// "1 500 руб." or "99,90"
func ParsePrice(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == ',':
			b.WriteRune('.')
		}
	}
	cleaned := strings.Trim(b.String(), ".")
	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

var sheetDateLayouts = []string{"02.01.2006", "2006-01-02", "02/01/2006"}

func parseSheetDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range sheetDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
