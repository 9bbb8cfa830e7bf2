package faq

// SiteContext уходит с каждым вызовом remote.
const SiteContext = "BAZA Barbershop — креативный барбершоп в Праге для молодежи и студентов. Стрижки, бритьё, уход за бородой. Яркий стиль, атмосфера уличной культуры."

var defaultEntries = []Entry{
	{
		Question: "Как записаться на стрижку?",
		Answer:   "Вы можете записаться через форму на сайте, по телефону +420 XXX XXX XXX или написать нам в Instagram @baza_prague",
		Keywords: []string{"запись", "записаться", "стрижка", "как", "booking", "online"},
	},
	{
		Question: "Сколько стоит стрижка?",
		Answer:   "Мужская стрижка — 600 Kč, борода — 400 Kč, комплекс (стрижка + борода) — 900 Kč. Уточняйте актуальные цены у барберов.",
		Keywords: []string{"цена", "стоимость", "сколько", "price", "cost", "kč"},
	},
	{
		Question: "Где вы находитесь?",
		Answer:   "Мы находимся в центре Праги, рядом с метро. Точный адрес: ulice XXX, Praha 1. На карте выше можете посмотреть расположение.",
		Keywords: []string{"где", "адрес", "локация", "address", "location", "прага", "praha"},
	},
	{
		Question: "Какие часы работы?",
		Answer:   "Мы работаем ежедневно с 10:00 до 20:00. В выходные дни возможны изменения, рекомендуем уточнять заранее.",
		Keywords: []string{"часы", "работа", "время", "когда", "hours", "open", "time"},
	},
	{
		Question: "Нужно ли записываться заранее?",
		Answer:   "Да, мы работаем по предварительной записи. Это гарантирует, что вас обслужят в удобное время без ожидания.",
		Keywords: []string{"предварительно", "заранее", "appointment", "advance", "нужно"},
	},
}

// Default: база знаний сайта.
func Default() *KnowledgeBase {
	return NewKnowledgeBase(defaultEntries)
}
