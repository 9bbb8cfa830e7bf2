package site

// Service: строка прайса
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Review struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Avatar string `json:"avatar"`
}

// Location для карты: один маркер в Lng/Lat.
type Location struct {
	Lng      float64 `json:"lng"`
	Lat      float64 `json:"lat"`
	Zoom     int     `json:"zoom"`
	StyleURL string  `json:"style_url"`
	Popup    string  `json:"popup"`
}

type Contacts struct {
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
	Hours     string `json:"hours"`
}

type Content struct {
	Services []Service `json:"services"`
	Reviews  []Review  `json:"reviews"`
	Gallery  []string  `json:"gallery"`
	Location Location  `json:"location"`
	Contacts Contacts  `json:"contacts"`
}

// Default: контент страницы. ID услуг совпадают со значениями service в
// форме записи.
func Default() Content {
	return Content{
		Services: []Service{
			{
				ID:          "haircut",
				Title:       "Мужская стрижка",
				Price:       "600 Kč",
				Duration:    "45 мин",
				Icon:        "scissors",
				Description: "Классическая или современная стрижка с мытьём головы и укладкой",
			},
			{
				ID:          "beard",
				Title:       "Борода",
				Price:       "400 Kč",
				Duration:    "30 мин",
				Icon:        "sparkles",
				Description: "Моделирование бороды, оформление контуров, уход",
			},
			{
				ID:          "complex",
				Title:       "Комплекс",
				Price:       "900 Kč",
				Duration:    "75 мин",
				Icon:        "zap",
				Description: "Стрижка + борода. Полное преображение со скидкой",
			},
			{
				ID:          "shave",
				Title:       "Королевское бритьё",
				Price:       "500 Kč",
				Duration:    "40 мин",
				Icon:        "flame",
				Description: "Горячими полотенцами, опасной бритвой и премиум косметикой",
			},
		},
		Reviews: []Review{
			{
				Name:   "Михаил",
				Rating: 5,
				Text:   "Лучший барбершоп в Праге! Атмосфера огонь, барберы знают своё дело. Хожу только сюда.",
				Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
			},
			{
				Name:   "Артём",
				Rating: 5,
				Text:   "Крутой стиль, приятная музыка, делают быстро и качественно. Цены адекватные для студента.",
				Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop&crop=face",
			},
			{
				Name:   "Давид",
				Rating: 5,
				Text:   "Наконец-то нашёл свой барбершоп! Граффити на стенах, хип-хоп в колонках, идеально.",
				Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
			},
		},
		Gallery: []string{
			"https://images.unsplash.com/photo-1599351431202-1e0f0137899f?w=400&h=400&fit=crop",
			"https://images.unsplash.com/photo-1621605815971-fbc98d665033?w=400&h=400&fit=crop",
			"https://images.unsplash.com/photo-1503951914875-452162b0f3f1?w=400&h=400&fit=crop",
			"https://images.unsplash.com/photo-1585747860715-2ba37e788b70?w=400&h=400&fit=crop",
			"https://images.unsplash.com/photo-1622287162716-f311baa1a2b8?w=400&h=400&fit=crop",
			"https://images.unsplash.com/photo-1605497788044-5a32c707848f?w=400&h=400&fit=crop",
		},
		Location: Location{
			Lng:      14.4378,
			Lat:      50.0755,
			Zoom:     14,
			StyleURL: "https://basemaps.cartocdn.com/gl/dark-matter-gl-style/style.json",
			Popup:    "BAZA Barbershop, Praha",
		},
		Contacts: Contacts{
			Phone:     "+420 123 456 789",
			Instagram: "@baza_prague",
			Hours:     "10:00–20:00",
		},
	}
}
