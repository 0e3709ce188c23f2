package menu

import (
	"aroma-storefront/internal/domain"

	"github.com/shopspring/decimal"
)

func localized(en, mt, it, fr, es, de, ru, pt, nl, pl string) domain.LocalizedText {
	return domain.LocalizedMap(map[domain.Language]string{
		domain.LangEnglish:    en,
		domain.LangMaltese:    mt,
		domain.LangItalian:    it,
		domain.LangFrench:     fr,
		domain.LangSpanish:    es,
		domain.LangGerman:     de,
		domain.LangRussian:    ru,
		domain.LangPortuguese: pt,
		domain.LangDutch:      nl,
		domain.LangPolish:     pl,
	})
}

// Fallback is the menu served when the restaurant API cannot be reached.
func Fallback() domain.Menu {
	return domain.Menu{
		Categories: []domain.Category{
			{ID: 1, Name: "Burgers", Icon: "🍔", SortOrder: 1, Active: true},
			{ID: 2, Name: "Sides", Icon: "🍟", SortOrder: 2, Active: true},
			{ID: 3, Name: "Drinks", Icon: "🥤", SortOrder: 3, Active: true},
			{ID: 4, Name: "Desserts", Icon: "🍰", SortOrder: 4, Active: true},
		},
		Items: []domain.MenuItem{
			{
				ID: 1,
				Name: localized("Classic Burger", "Burger Klassiku", "Burger Classico", "Burger Classique", "Burger Clásico",
					"Klassischer Burger", "Классический бургер", "Burger Clássico", "Klassieke Burger", "Klasyczny Burger"),
				Description: localized(
					"Juicy beef patty with fresh lettuce and tomato",
					"Patty tal-baħar b'lettuce friska u tadam",
					"Polpetta di manzo succosa con lattuga fresca e pomodoro",
					"Steak de bœuf juteux avec laitue fraîche et tomate",
					"Hamburguesa de carne jugosa con lechuga fresca y tomate",
					"Saftiges Rindersteak mit frischem Salat und Tomate",
					"Сочная говяжья котлета со свежим салатом и помидорами",
					"Hambúrguer de carne suculento com alface fresca e tomate",
					"Sappige rundvleesburger met verse sla en tomaat",
					"Soczysta wołowina z świeżą sałatą i pomidorem",
				),
				Price:      decimal.RequireFromString("12.99"),
				Image:      "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400",
				CategoryID: 1,
				Active:     true,
				Ingredients: localized(
					"Beef patty, lettuce, tomato, onion, bun",
					"Patty tal-baħar, lettuce, tadam, basal, bun",
					"Polpetta di manzo, lattuga, pomodoro, cipolla, panino",
					"Steak de bœuf, laitue, tomate, oignon, pain",
					"Hamburguesa de carne, lechuga, tomate, cebolla, pan",
					"Rindersteak, Salat, Tomate, Zwiebel, Brötchen",
					"Говяжья котлета, салат, помидор, лук, булочка",
					"Hambúrguer de carne, alface, tomate, cebola, pão",
					"Rundvleesburger, sla, tomaat, ui, broodje",
					"Wołowina, sałata, pomidor, cebula, bułka",
				),
				Nutrition: localized(
					"Calories: 650, Protein: 35g, Carbs: 45g, Fat: 35g",
					"Kaloriji: 650, Proteini: 35g, Karboidrati: 45g, Xaħmijiet: 35g",
					"Calorie: 650, Proteine: 35g, Carboidrati: 45g, Grassi: 35g",
					"Calories: 650, Protéines: 35g, Glucides: 45g, Lipides: 35g",
					"Calorías: 650, Proteínas: 35g, Carbohidratos: 45g, Grasas: 35g",
					"Kalorien: 650, Eiweiß: 35g, Kohlenhydrate: 45g, Fette: 35g",
					"Калории: 650, Белки: 35г, Углеводы: 45г, Жиры: 35г",
					"Calorias: 650, Proteínas: 35g, Carboidratos: 45g, Gorduras: 35g",
					"Calorieën: 650, Eiwit: 35g, Koolhydraten: 45g, Vet: 35g",
					"Kalorie: 650, Białko: 35g, Węglowodany: 45g, Tłuszcz: 35g",
				),
				Allergies: localized(
					"Contains gluten, dairy",
					"Fih gluten, dairy",
					"Contiene glutine, latticini",
					"Contient du gluten, des produits laitiers",
					"Contiene gluten, lácteos",
					"Enthält Gluten, Milchprodukte",
					"Содержит глютен, молочные продукты",
					"Contém glúten, laticínios",
					"Bevat gluten, zuivel",
					"Zawiera gluten, nabiał",
				),
				PrepTime: localized("15 min", "15 min", "15 min", "15 min", "15 min", "15 Min", "15 мин", "15 min", "15 min", "15 min"),
			},
		},
	}
}
