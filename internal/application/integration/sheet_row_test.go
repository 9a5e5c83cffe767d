package integration

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCleanDomain(t *testing.T) {
	assert.Equal(t, "avtoservis.volzhck.ru", CleanDomain("https://avtoservis.volzhck.ru/"))
	assert.Equal(t, "avtoservis.volzhck.ru", CleanDomain("http://Avtoservis.Volzhck.ru/page?x=1"))
	assert.Equal(t, "avtoservis34.ru", CleanDomain("  avtoservis34.ru  "))
	assert.Equal(t, "", CleanDomain(""))
}

func TestParsePrice(t *testing.T) {
	assert.True(t, ParsePrice("1500").Equal(decimal.NewFromInt(1500)))
	assert.True(t, ParsePrice("1 500 руб.").Equal(decimal.NewFromInt(1500)))
	assert.True(t, ParsePrice("99,90").Equal(decimal.RequireFromString("99.9")))
	assert.True(t, ParsePrice("от 2500₽").Equal(decimal.NewFromInt(2500)))
	assert.True(t, ParsePrice("").Equal(decimal.Zero))
	assert.True(t, ParsePrice("договорная").Equal(decimal.Zero))
}

func TestParseOrganizationRows(t *testing.T) {
	values := [][]interface{}{
		{"Домен", "Название", "Категория", "Тип", "Телефон", "Email", "Сайт", "Адрес", "Режим работы", "Токен бота", "Chat ID", "Title", "Description", "H1", "О нас"},
		{"https://avtoservis.volzhck.ru", "Автосервис", "Авто", "Сервис", "+7 900 111-22-33", "box@avtoservis.ru", "", "ул. Ленина, 1", "9-18", "123:token", "-100500", "Автосервис в Волжском", "Ремонт авто", "Ремонт любой сложности", "О компании"},
		{"", "Без домена — строка пропускается"},
		{"stroyka.volzhck.ru", "Стройматериалы"},
	}

	rows, err := ParseOrganizationRows(values)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, 2, first.RowNumber)
	assert.Equal(t, "avtoservis.volzhck.ru", first.Domain)
	assert.Equal(t, "Автосервис", first.Name)
	assert.Equal(t, "123:token", first.BotToken)
	assert.Equal(t, "-100500", first.ChatID)
	assert.Equal(t, "Ремонт любой сложности", first.H1)

	// short row: missing cells come back empty
	assert.Equal(t, "stroyka.volzhck.ru", rows[1].Domain)
	assert.Equal(t, "", rows[1].Phone)
}

func TestParseOrganizationRows_TrailingSpaceHeaders(t *testing.T) {
	values := [][]interface{}{
		{"Домен ", "Название  "},
		{"avtoservis.volzhck.ru", "Автосервис"},
	}

	rows, err := ParseOrganizationRows(values)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Автосервис", rows[0].Name)
}

func TestParseOrganizationRows_MissingRequiredColumn(t *testing.T) {
	values := [][]interface{}{
		{"Название", "Телефон"},
		{"Автосервис", "+7 900 111-22-33"},
	}

	_, err := ParseOrganizationRows(values)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Домен")
}

func TestParseProductRows(t *testing.T) {
	values := [][]interface{}{
		{"Домен", "Товар", "Описание товара", "Цена", "Категория товара", "Изображение"},
		{"avtoservis.volzhck.ru", "Замена масла", "Полная замена", "1 500 руб.", "ТО", "https://img.example.com/oil.jpg"},
		{"avtoservis.volzhck.ru", "", "без названия — пропускается"},
	}

	rows := ParseProductRows(values)

	assert.Len(t, rows, 1)
	assert.Equal(t, "Замена масла", rows[0].Name)
	assert.True(t, rows[0].Price.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "https://img.example.com/oil.jpg", rows[0].ImageURL)
}

func TestParsePromotionRows(t *testing.T) {
	values := [][]interface{}{
		{"Домен", "Акция", "Описание акции", "Действует до"},
		{"avtoservis.volzhck.ru", "Скидка 10%", "На первое ТО", "31.12.2026"},
		{"avtoservis.volzhck.ru", "Без даты", "бессрочная", ""},
	}

	rows := ParsePromotionRows(values)

	assert.Len(t, rows, 2)
	assert.Equal(t, "Скидка 10%", rows[0].Title)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), *rows[0].ValidUntil)
	assert.Nil(t, rows[1].ValidUntil)
}
