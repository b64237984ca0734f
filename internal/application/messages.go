package application

import (
	"fmt"
	"strings"

	"currency-assistant/internal/domain"
)

// Top-level commands and menu buttons
const (
	CommandStart          = "/start"
	CommandManageCurrency = "/manage_currency"
	CommandGetCurrencies  = "/get_currencies"
	CommandConvert        = "/convert"

	ButtonAddCurrency    = "Добавить валюту"
	ButtonDeleteCurrency = "Удалить валюту"
	ButtonUpdateCurrency = "Изменить курс валюты"
)

// User facing texts
const (
	msgChooseCommand     = "Выберите команду:"
	msgChooseAction      = "Выберите действие:"
	msgWrongAction       = "Неверная команда. Попробуйте снова."
	msgUnknownCommand    = "Неизвестная команда. Выберите одну из доступных:"
	msgNoAccess          = "Нет доступа к команде"
	msgEnterName         = "Введите название валюты:"
	msgEnterNameDelete   = "Введите название валюты для удаления:"
	msgEnterNameUpdate   = "Введите название валюты для изменения:"
	msgInvalidName       = "Название валюты должно быть непустым и не длиннее %d символов. Попробуйте снова."
	msgEnterRate         = "Введите курс к %s:"
	msgEnterNewRate      = "Введите новый курс к %s:"
	msgEnterAmount       = "Введите сумму:"
	msgInvalidRate       = "Неверный формат курса. Введите положительное число, не больше 6 знаков после запятой, например 90,5."
	msgInvalidAmount     = "Введите корректную сумму: положительное число, например 100 или 12,5."
	msgCurrencyExists    = "Данная валюта уже существует."
	msgCurrencyConflict  = "Валюта уже существует, попробуйте обновить курс через соответствующую команду."
	msgCurrencyNotFound  = "Такая валюта не найдена."
	msgNothingToDelete   = "Такой валюты не существует."
	msgCurrencyAdded     = "Валюта %s успешно добавлена с курсом %s %s."
	msgCurrencyDeleted   = "Валюта %s удалена."
	msgCurrencyUpdated   = "Курс валюты %s успешно обновлён до %s %s."
	msgConverted         = "%s %s = %s %s"
	msgCurrencyListEmpty = "Список валют пуст."
	msgCurrencyListTitle = "Список валют:"
	msgListFailed        = "Ошибка при получении данных. Попробуйте позже."
	msgServiceFailed     = "Сервис временно недоступен. Попробуйте позже."
	msgWelcome           = "Добро пожаловать! Доступные команды: %s"
)

func (e *ConversationEngine) availableCommands(userID string) []string {
	if e.isAdmin(userID) {
		return []string{CommandStart, CommandManageCurrency, CommandGetCurrencies, CommandConvert}
	}
	return []string{CommandStart, CommandGetCurrencies, CommandConvert}
}

func menuButtons() []string {
	return []string{ButtonAddCurrency, ButtonDeleteCurrency, ButtonUpdateCurrency}
}

func formatCurrencyList(currencies []domain.CurrencyResponse, baseCurrency string) string {
	if len(currencies) == 0 {
		return msgCurrencyListEmpty
	}
	var b strings.Builder
	b.WriteString(msgCurrencyListTitle)
	for _, c := range currencies {
		fmt.Fprintf(&b, "\n%s: %s %s", domain.NormalizeCurrencyName(c.CurrencyName), c.Rate.String(), baseCurrency)
	}
	return b.String()
}
