package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Russian

	message.SetString(lang, MsgExpectedPost, "Ожидался POST-запрос.")
	message.SetString(lang, MsgMissingParameters, "Отсутствуют обязательные параметры x, y, r.")
	message.SetString(lang, MsgNotANumber, "Параметр %s должен быть числом.")
	message.SetString(lang, MsgMalformedForm, "Некорректные данные формы.")
	message.SetString(lang, MsgYRange, "Значение Y должно быть в диапазоне от -3 до 3.")
	message.SetString(lang, MsgRRange, "Значение R должно быть в диапазоне от 2 до 5.")
	message.SetString(lang, MsgServerError, "Серверная ошибка: %s")
	message.SetString(lang, MsgNotFound, "Не найдено.")
	message.SetString(lang, MsgTooManyRequests, "Слишком много запросов.")
	message.SetString(lang, MsgBodyTooLarge, "Слишком большое тело запроса.")

	message.SetString(lang, MsgErrorPrefix, "Ошибка: %s")
	message.SetString(lang, MsgHit, "Попадание")
	message.SetString(lang, MsgMiss, "Промах")
}
