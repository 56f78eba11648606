package i18n

import (
	apperrors "github.com/louisbranch/duskmarch/internal/platform/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Reasons an action was rejected without changing the duel.
const (
	ReasonDuelOver        = "duel_over"
	ReasonCardNotInHand   = "card_not_in_hand"
	ReasonNotEnoughEnergy = "not_enough_energy"
	ReasonSacrificeUsed   = "sacrifice_used"
	ReasonEchoUnavailable = "echo_unavailable"
	ReasonNotAllowed      = "not_allowed"
)

type translated struct {
	en   string
	ru   string
	args []string
}

var errorMessages = map[apperrors.Code]translated{
	apperrors.CodeSessionIDRequired:   {en: "A session ID is required.", ru: "Требуется идентификатор сессии."},
	apperrors.CodeInvalidZone:         {en: "Choose Nav, Yav, or Prav as the resonance zone.", ru: "Выберите зону резонанса: Навь, Явь или Правь."},
	apperrors.CodeInvalidIntent:       {en: "That action is not recognized.", ru: "Это действие не распознано."},
	apperrors.CodeInvalidConfig:       {en: "The duel setup is invalid.", ru: "Неверные параметры поединка."},
	apperrors.CodeInvalidFilter:       {en: "The journal filter could not be parsed.", ru: "Не удалось разобрать фильтр журнала."},
	apperrors.CodeInvalidPageToken:    {en: "The page token is invalid.", ru: "Неверный токен страницы."},
	apperrors.CodeEnemyTypeRequired:   {en: "An enemy type is required.", ru: "Требуется тип противника."},
	apperrors.CodeHandRequired:        {en: "The starting hand must contain at least one card.", ru: "Стартовая рука должна содержать хотя бы одну карту."},
	apperrors.CodeSituationOutOfRange: {en: "The situation modifier is out of range.", ru: "Модификатор ситуации вне допустимого диапазона."},
	apperrors.CodeSessionNotFound:     {en: "Duel %[1]s was not found.", ru: "Поединок %[1]s не найден.", args: []string{"SessionID"}},
	apperrors.CodeSessionEnded:        {en: "Duel %[1]s has already ended.", ru: "Поединок %[1]s уже завершён.", args: []string{"SessionID"}},
	apperrors.CodeSessionExists:       {en: "Duel %[1]s already exists.", ru: "Поединок %[1]s уже существует.", args: []string{"SessionID"}},
	apperrors.CodeCheckpointCorrupt:   {en: "A saved state of duel %[1]s is damaged.", ru: "Сохранение поединка %[1]s повреждено.", args: []string{"SessionID"}},
	apperrors.CodeNoValidCheckpoint:   {en: "No intact save of duel %[1]s remains.", ru: "Не осталось целых сохранений поединка %[1]s.", args: []string{"SessionID"}},
	apperrors.CodeReplayDiverged:      {en: "Duel %[1]s could not be restored consistently.", ru: "Поединок %[1]s не удалось восстановить согласованно.", args: []string{"SessionID"}},
	apperrors.CodeStorage:             {en: "Storage is temporarily unavailable.", ru: "Хранилище временно недоступно."},
	apperrors.CodeUnknown:             {en: "Something went wrong.", ru: "Что-то пошло не так."},
}

var rejectionMessages = map[string]translated{
	ReasonDuelOver:        {en: "The duel is over.", ru: "Поединок окончен."},
	ReasonCardNotInHand:   {en: "That card is not in your hand.", ru: "Этой карты нет в руке."},
	ReasonNotEnoughEnergy: {en: "Not enough energy.", ru: "Недостаточно энергии."},
	ReasonSacrificeUsed:   {en: "You already made a sacrifice this turn.", ru: "В этом ходу жертва уже принесена."},
	ReasonEchoUnavailable: {en: "There is nothing to echo.", ru: "Нечего повторить эхом."},
	ReasonNotAllowed:      {en: "That action is not allowed now.", ru: "Сейчас это действие недоступно."},
}

func init() {
	for code, msg := range errorMessages {
		register(errorKey(code), msg)
	}
	for reason, msg := range rejectionMessages {
		register(rejectionKey(reason), msg)
	}
}

func register(key string, msg translated) {
	_ = message.SetString(language.English, key, msg.en)
	_ = message.SetString(Russian, key, msg.ru)
}
