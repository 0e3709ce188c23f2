package i18n

import "aroma-storefront/internal/domain"

// tr builds a Translations value in picker order.
func tr(en, mt, it, fr, es, de, ru, pt, nl, pl string) Translations {
	return Translations{
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
	}
}

// same is a term spelled identically everywhere except Russian.
func same(term, ru string) Translations {
	return tr(term, term, term, term, term, term, ru, term, term, term)
}

// DefaultDictionaries returns a fresh copy of the built-in lookup tables.
func DefaultDictionaries() Dictionaries {
	return Dictionaries{
		Categories:    builtinCategories(),
		CategoryTerms: categoryTerms(),
		ItemTerms:     itemTerms(),
		UI:            uiText(),
	}
}

func builtinCategories() map[string]Translations {
	return map[string]Translations{
		"Burgers":  tr("Burgers", "Burgers", "Hamburger", "Burgers", "Hamburguesas", "Burger", "Бургеры", "Hambúrgueres", "Burgers", "Burgery"),
		"Sides":    tr("Sides", "Platti tal-Ġenb", "Contorni", "Accompagnements", "Acompañamientos", "Beilagen", "Гарниры", "Acompanhamentos", "Bijgerechten", "Dodatki"),
		"Drinks":   tr("Drinks", "Xorb", "Bevande", "Boissons", "Bebidas", "Getränke", "Напитки", "Bebidas", "Dranken", "Napoje"),
		"Desserts": tr("Desserts", "Deżerti", "Dolci", "Desserts", "Postres", "Desserts", "Десерты", "Sobremesas", "Desserts", "Desery"),
	}
}

func categoryTerms() map[string]Translations {
	return map[string]Translations{
		"pizza":         same("Pizza", "Пицца"),
		"pasta":         tr("Pasta", "Għaġin", "Pasta", "Pâtes", "Pasta", "Pasta", "Паста", "Massas", "Pasta", "Makarony"),
		"salads":        tr("Salads", "Insalati", "Insalate", "Salades", "Ensaladas", "Salate", "Салаты", "Saladas", "Salades", "Sałatki"),
		"soups":         tr("Soups", "Sopop", "Zuppe", "Soupes", "Sopas", "Suppen", "Супы", "Sopas", "Soepen", "Zupy"),
		"starters":      tr("Starters", "Antipasti", "Antipasti", "Entrées", "Entrantes", "Vorspeisen", "Закуски", "Entradas", "Voorgerechten", "Przystawki"),
		"appetizers":    tr("Appetizers", "Antipasti", "Stuzzichini", "Amuse-bouches", "Aperitivos", "Appetithäppchen", "Закуски", "Aperitivos", "Hapjes", "Przekąski"),
		"mains":         tr("Mains", "Platti Ewlenin", "Secondi", "Plats Principaux", "Platos Principales", "Hauptgerichte", "Основные блюда", "Pratos Principais", "Hoofdgerechten", "Dania Główne"),
		"main courses":  tr("Main Courses", "Platti Ewlenin", "Secondi Piatti", "Plats Principaux", "Platos Principales", "Hauptgerichte", "Основные блюда", "Pratos Principais", "Hoofdgerechten", "Dania Główne"),
		"breakfast":     tr("Breakfast", "Kolazzjon", "Colazione", "Petit-déjeuner", "Desayuno", "Frühstück", "Завтрак", "Pequeno-almoço", "Ontbijt", "Śniadanie"),
		"brunch":        same("Brunch", "Бранч"),
		"lunch":         tr("Lunch", "Ikla ta' Nofsinhar", "Pranzo", "Déjeuner", "Almuerzo", "Mittagessen", "Обед", "Almoço", "Lunch", "Obiad"),
		"dinner":        tr("Dinner", "Ikla ta' Filgħaxija", "Cena", "Dîner", "Cena", "Abendessen", "Ужин", "Jantar", "Diner", "Kolacja"),
		"vegetarian":    tr("Vegetarian", "Veġetarjan", "Vegetariano", "Végétarien", "Vegetariano", "Vegetarisch", "Вегетарианское", "Vegetariano", "Vegetarisch", "Wegetariańskie"),
		"vegan":         tr("Vegan", "Vegan", "Vegano", "Végan", "Vegano", "Vegan", "Веганское", "Vegano", "Veganistisch", "Wegańskie"),
		"gluten free":   tr("Gluten Free", "Mingħajr Glutina", "Senza Glutine", "Sans Gluten", "Sin Gluten", "Glutenfrei", "Без глютена", "Sem Glúten", "Glutenvrij", "Bezglutenowe"),
		"seafood":       tr("Seafood", "Frott tal-Baħar", "Frutti di Mare", "Fruits de Mer", "Mariscos", "Meeresfrüchte", "Морепродукты", "Marisco", "Zeevruchten", "Owoce Morza"),
		"fish":          tr("Fish", "Ħut", "Pesce", "Poisson", "Pescado", "Fisch", "Рыба", "Peixe", "Vis", "Ryby"),
		"meat":          tr("Meat", "Laħam", "Carne", "Viande", "Carne", "Fleisch", "Мясо", "Carne", "Vlees", "Mięso"),
		"chicken":       tr("Chicken", "Tiġieġ", "Pollo", "Poulet", "Pollo", "Hähnchen", "Курица", "Frango", "Kip", "Kurczak"),
		"grill":         tr("Grill", "Grill", "Griglia", "Grillades", "Parrilla", "Grill", "Гриль", "Grelhados", "Grill", "Grill"),
		"bbq":           tr("BBQ", "BBQ", "Barbecue", "Barbecue", "Barbacoa", "Barbecue", "Барбекю", "Churrasco", "Barbecue", "Grill"),
		"steaks":        tr("Steaks", "Steaks", "Bistecche", "Steaks", "Filetes", "Steaks", "Стейки", "Bifes", "Steaks", "Steki"),
		"sandwiches":    tr("Sandwiches", "Sandwiches", "Panini", "Sandwichs", "Sándwiches", "Sandwiches", "Сэндвичи", "Sanduíches", "Broodjes", "Kanapki"),
		"wraps":         tr("Wraps", "Wraps", "Piadine", "Wraps", "Wraps", "Wraps", "Роллы", "Wraps", "Wraps", "Wrapy"),
		"kebabs":        tr("Kebabs", "Kebabs", "Kebab", "Kebabs", "Kebabs", "Kebabs", "Кебабы", "Kebabs", "Kebabs", "Kebaby"),
		"sushi":         same("Sushi", "Суши"),
		"noodles":       tr("Noodles", "Noodles", "Noodles", "Nouilles", "Fideos", "Nudeln", "Лапша", "Massa Oriental", "Noedels", "Makaron Azjatycki"),
		"rice":          tr("Rice", "Ross", "Riso", "Riz", "Arroz", "Reis", "Рис", "Arroz", "Rijst", "Ryż"),
		"curry":         same("Curry", "Карри"),
		"tapas":         same("Tapas", "Тапас"),
		"snacks":        tr("Snacks", "Snacks", "Snack", "En-cas", "Tentempiés", "Snacks", "Снеки", "Petiscos", "Snacks", "Przekąski"),
		"kids menu":     tr("Kids Menu", "Menu tat-Tfal", "Menù Bambini", "Menu Enfant", "Menú Infantil", "Kindermenü", "Детское меню", "Menu Infantil", "Kindermenu", "Menu dla Dzieci"),
		"specials":      tr("Specials", "Speċjalitajiet", "Specialità", "Spécialités", "Especialidades", "Spezialitäten", "Фирменные блюда", "Especialidades", "Specialiteiten", "Specjalności"),
		"coffee":        tr("Coffee", "Kafè", "Caffè", "Café", "Café", "Kaffee", "Кофе", "Café", "Koffie", "Kawa"),
		"tea":           tr("Tea", "Te", "Tè", "Thé", "Té", "Tee", "Чай", "Chá", "Thee", "Herbata"),
		"juices":        tr("Juices", "Meraq", "Succhi", "Jus", "Zumos", "Säfte", "Соки", "Sumos", "Sappen", "Soki"),
		"smoothies":     tr("Smoothies", "Smoothies", "Frullati", "Smoothies", "Batidos", "Smoothies", "Смузи", "Batidos", "Smoothies", "Smoothie"),
		"cocktails":     tr("Cocktails", "Cocktails", "Cocktail", "Cocktails", "Cócteles", "Cocktails", "Коктейли", "Cocktails", "Cocktails", "Koktajle"),
		"beer":          tr("Beer", "Birra", "Birra", "Bière", "Cerveza", "Bier", "Пиво", "Cerveja", "Bier", "Piwo"),
		"wine":          tr("Wine", "Inbid", "Vino", "Vin", "Vino", "Wein", "Вино", "Vinho", "Wijn", "Wino"),
		"beverages":     tr("Beverages", "Xorb", "Bevande", "Boissons", "Bebidas", "Getränke", "Напитки", "Bebidas", "Dranken", "Napoje"),
		"soft drinks":   tr("Soft Drinks", "Soft Drinks", "Bibite", "Sodas", "Refrescos", "Erfrischungsgetränke", "Безалкогольные напитки", "Refrigerantes", "Frisdranken", "Napoje Bezalkoholowe"),
		"hot drinks":    tr("Hot Drinks", "Xorb Sħun", "Bevande Calde", "Boissons Chaudes", "Bebidas Calientes", "Heißgetränke", "Горячие напитки", "Bebidas Quentes", "Warme Dranken", "Napoje Gorące"),
		"cold drinks":   tr("Cold Drinks", "Xorb Kiesaħ", "Bevande Fredde", "Boissons Froides", "Bebidas Frías", "Kaltgetränke", "Холодные напитки", "Bebidas Frias", "Koude Dranken", "Napoje Zimne"),
		"ice cream":     tr("Ice Cream", "Ġelat", "Gelato", "Glaces", "Helados", "Eis", "Мороженое", "Gelados", "IJs", "Lody"),
		"cakes":         tr("Cakes", "Kejkijiet", "Torte", "Gâteaux", "Tartas", "Kuchen", "Торты", "Bolos", "Taarten", "Ciasta"),
		"pastries":      tr("Pastries", "Pastizzerija", "Pasticceria", "Pâtisseries", "Pasteles", "Gebäck", "Выпечка", "Pastelaria", "Gebak", "Wypieki"),
		"bakery":        tr("Bakery", "Forn", "Panetteria", "Boulangerie", "Panadería", "Bäckerei", "Пекарня", "Padaria", "Bakkerij", "Piekarnia"),
		"sweets":        tr("Sweets", "Ħelu", "Dolciumi", "Douceurs", "Dulces", "Süßes", "Сладости", "Doces", "Zoetigheden", "Słodycze"),
		"italian":       tr("Italian", "Taljan", "Italiano", "Italien", "Italiano", "Italienisch", "Итальянская кухня", "Italiano", "Italiaans", "Włoska"),
		"french":        tr("French", "Franċiż", "Francese", "Français", "Francés", "Französisch", "Французская кухня", "Francês", "Frans", "Francuska"),
		"spanish":       tr("Spanish", "Spanjol", "Spagnolo", "Espagnol", "Español", "Spanisch", "Испанская кухня", "Espanhol", "Spaans", "Hiszpańska"),
		"mexican":       tr("Mexican", "Messikan", "Messicano", "Mexicain", "Mexicano", "Mexikanisch", "Мексиканская кухня", "Mexicano", "Mexicaans", "Meksykańska"),
		"chinese":       tr("Chinese", "Ċiniż", "Cinese", "Chinois", "Chino", "Chinesisch", "Китайская кухня", "Chinês", "Chinees", "Chińska"),
		"japanese":      tr("Japanese", "Ġappuniż", "Giapponese", "Japonais", "Japonés", "Japanisch", "Японская кухня", "Japonês", "Japans", "Japońska"),
		"indian":        tr("Indian", "Indjan", "Indiano", "Indien", "Indio", "Indisch", "Индийская кухня", "Indiano", "Indiaas", "Indyjska"),
		"thai":          tr("Thai", "Tajlandiż", "Tailandese", "Thaï", "Tailandés", "Thailändisch", "Тайская кухня", "Tailandês", "Thais", "Tajska"),
		"greek":         tr("Greek", "Grieg", "Greco", "Grec", "Griego", "Griechisch", "Греческая кухня", "Grego", "Grieks", "Grecka"),
		"american":      tr("American", "Amerikan", "Americano", "Américain", "Americano", "Amerikanisch", "Американская кухня", "Americano", "Amerikaans", "Amerykańska"),
		"mediterranean": tr("Mediterranean", "Mediterran", "Mediterraneo", "Méditerranéen", "Mediterráneo", "Mediterran", "Средиземноморская кухня", "Mediterrâneo", "Mediterraan", "Śródziemnomorska"),
		"maltese":       tr("Maltese", "Malti", "Maltese", "Maltais", "Maltés", "Maltesisch", "Мальтийская кухня", "Maltês", "Maltees", "Maltańska"),
		"fast food":     tr("Fast Food", "Fast Food", "Fast Food", "Restauration Rapide", "Comida Rápida", "Fast Food", "Фастфуд", "Fast Food", "Fastfood", "Fast Food"),
		"street food":   tr("Street Food", "Ikel tat-Triq", "Cibo di Strada", "Cuisine de Rue", "Comida Callejera", "Streetfood", "Уличная еда", "Comida de Rua", "Straatvoedsel", "Jedzenie Uliczne"),
		"healthy":       tr("Healthy", "B'Saħħtu", "Salutare", "Sain", "Saludable", "Gesund", "Здоровое питание", "Saudável", "Gezond", "Zdrowe"),
		"combos":        tr("Combos", "Kombinazzjonijiet", "Menù Combo", "Formules", "Combos", "Menüs", "Комбо", "Combos", "Combo's", "Zestawy"),
	}
}

// itemTerms is ordered: substring matching returns the first key found, so
// longer phrases are listed before the words they contain.
func itemTerms() []Term {
	return []Term{
		{"Burger", tr("Burger", "Burger", "Hamburger", "Burger", "Hamburguesa", "Burger", "Бургер", "Hambúrguer", "Burger", "Burger")},
		{"Cheese", tr("Cheese", "Ġobon", "Formaggio", "Fromage", "Queso", "Käse", "Сыр", "Queijo", "Kaas", "Ser")},
		{"Chicken", tr("Chicken", "Tiġieġ", "Pollo", "Poulet", "Pollo", "Hähnchen", "Курица", "Frango", "Kip", "Kurczak")},
		{"Beef", tr("Beef", "Ċanga", "Manzo", "Bœuf", "Ternera", "Rind", "Говядина", "Carne de Vaca", "Rundvlees", "Wołowina")},
		{"Pork", tr("Pork", "Majjal", "Maiale", "Porc", "Cerdo", "Schwein", "Свинина", "Porco", "Varkensvlees", "Wieprzowina")},
		{"Lamb", tr("Lamb", "Ħaruf", "Agnello", "Agneau", "Cordero", "Lamm", "Баранина", "Borrego", "Lamsvlees", "Jagnięcina")},
		{"Salmon", tr("Salmon", "Salamun", "Salmone", "Saumon", "Salmón", "Lachs", "Лосось", "Salmão", "Zalm", "Łosoś")},
		{"Tuna", tr("Tuna", "Tonn", "Tonno", "Thon", "Atún", "Thunfisch", "Тунец", "Atum", "Tonijn", "Tuńczyk")},
		{"Fish", tr("Fish", "Ħut", "Pesce", "Poisson", "Pescado", "Fisch", "Рыба", "Peixe", "Vis", "Ryba")},
		{"Shrimp", tr("Shrimp", "Gambli", "Gamberi", "Crevettes", "Gambas", "Garnelen", "Креветки", "Camarão", "Garnalen", "Krewetki")},
		{"Bacon", tr("Bacon", "Bejken", "Pancetta", "Bacon", "Tocino", "Speck", "Бекон", "Bacon", "Spek", "Boczek")},
		{"Ham", tr("Ham", "Perżut", "Prosciutto", "Jambon", "Jamón", "Schinken", "Ветчина", "Fiambre", "Ham", "Szynka")},
		{"Egg", tr("Egg", "Bajda", "Uovo", "Œuf", "Huevo", "Ei", "Яйцо", "Ovo", "Ei", "Jajko")},
		{"Tomato", tr("Tomato", "Tadam", "Pomodoro", "Tomate", "Tomate", "Tomate", "Помидор", "Tomate", "Tomaat", "Pomidor")},
		{"Lettuce", tr("Lettuce", "Ħass", "Lattuga", "Laitue", "Lechuga", "Salat", "Салат-латук", "Alface", "Sla", "Sałata")},
		{"Onion", tr("Onion", "Basal", "Cipolla", "Oignon", "Cebolla", "Zwiebel", "Лук", "Cebola", "Ui", "Cebula")},
		{"Garlic", tr("Garlic", "Tewm", "Aglio", "Ail", "Ajo", "Knoblauch", "Чеснок", "Alho", "Knoflook", "Czosnek")},
		{"Mushroom", tr("Mushroom", "Faqqiegħ", "Funghi", "Champignons", "Champiñones", "Pilze", "Грибы", "Cogumelos", "Champignons", "Grzyby")},
		{"Pepper", tr("Pepper", "Bżar", "Peperone", "Poivron", "Pimiento", "Paprika", "Перец", "Pimento", "Paprika", "Papryka")},
		{"Avocado", tr("Avocado", "Avokado", "Avocado", "Avocat", "Aguacate", "Avocado", "Авокадо", "Abacate", "Avocado", "Awokado")},
		{"Vegetables", tr("Vegetables", "Ħaxix", "Verdure", "Légumes", "Verduras", "Gemüse", "Овощи", "Legumes", "Groenten", "Warzywa")},
		{"Fries", tr("Fries", "Ċipps", "Patatine Fritte", "Frites", "Patatas Fritas", "Pommes Frites", "Картофель фри", "Batatas Fritas", "Friet", "Frytki")},
		{"Potato", tr("Potato", "Patata", "Patata", "Pomme de Terre", "Patata", "Kartoffel", "Картофель", "Batata", "Aardappel", "Ziemniak")},
		{"Rice", tr("Rice", "Ross", "Riso", "Riz", "Arroz", "Reis", "Рис", "Arroz", "Rijst", "Ryż")},
		{"Bread", tr("Bread", "Ħobż", "Pane", "Pain", "Pan", "Brot", "Хлеб", "Pão", "Brood", "Chleb")},
		{"Salad", tr("Salad", "Insalata", "Insalata", "Salade", "Ensalada", "Salat", "Салат", "Salada", "Salade", "Sałatka")},
		{"Soup", tr("Soup", "Soppa", "Zuppa", "Soupe", "Sopa", "Suppe", "Суп", "Sopa", "Soep", "Zupa")},
		{"Pizza", same("Pizza", "Пицца")},
		{"Spaghetti", tr("Spaghetti", "Spagetti", "Spaghetti", "Spaghetti", "Espaguetis", "Spaghetti", "Спагетти", "Esparguete", "Spaghetti", "Spaghetti")},
		{"Lasagna", tr("Lasagna", "Lasanja", "Lasagne", "Lasagnes", "Lasaña", "Lasagne", "Лазанья", "Lasanha", "Lasagne", "Lazania")},
		{"Pasta", tr("Pasta", "Għaġin", "Pasta", "Pâtes", "Pasta", "Nudeln", "Паста", "Massa", "Pasta", "Makaron")},
		{"Sauce", tr("Sauce", "Zalza", "Salsa", "Sauce", "Salsa", "Soße", "Соус", "Molho", "Saus", "Sos")},
		{"Steak", tr("Steak", "Steak", "Bistecca", "Steak", "Filete", "Steak", "Стейк", "Bife", "Biefstuk", "Stek")},
		{"Sausage", tr("Sausage", "Zalzett", "Salsiccia", "Saucisse", "Salchicha", "Wurst", "Колбаса", "Salsicha", "Worst", "Kiełbasa")},
		{"Wings", tr("Wings", "Ġwienaħ", "Alette", "Ailes", "Alitas", "Flügel", "Крылышки", "Asas", "Vleugels", "Skrzydełka")},
		{"Nuggets", tr("Nuggets", "Nuggets", "Bocconcini", "Nuggets", "Nuggets", "Nuggets", "Наггетсы", "Nuggets", "Nuggets", "Nuggetsy")},
		{"Sandwich", tr("Sandwich", "Sandwich", "Panino", "Sandwich", "Sándwich", "Sandwich", "Сэндвич", "Sanduíche", "Broodje", "Kanapka")},
		{"Wrap", tr("Wrap", "Wrap", "Piadina", "Wrap", "Wrap", "Wrap", "Ролл", "Wrap", "Wrap", "Wrap")},
		{"Apple", tr("Apple", "Tuffieħ", "Mela", "Pomme", "Manzana", "Apfel", "Яблоко", "Maçã", "Appel", "Jabłko")},
		{"Orange", tr("Orange", "Larinġ", "Arancia", "Orange", "Naranja", "Orange", "Апельсин", "Laranja", "Sinaasappel", "Pomarańcza")},
		{"Lemon", tr("Lemon", "Lumi", "Limone", "Citron", "Limón", "Zitrone", "Лимон", "Limão", "Citroen", "Cytryna")},
		{"Strawberry", tr("Strawberry", "Frawli", "Fragola", "Fraise", "Fresa", "Erdbeere", "Клубника", "Morango", "Aardbei", "Truskawka")},
		{"Banana", tr("Banana", "Banana", "Banana", "Banane", "Plátano", "Banane", "Банан", "Banana", "Banaan", "Banan")},
		{"Chocolate", tr("Chocolate", "Ċikkulata", "Cioccolato", "Chocolat", "Chocolate", "Schokolade", "Шоколад", "Chocolate", "Chocolade", "Czekolada")},
		{"Vanilla", tr("Vanilla", "Vanilla", "Vaniglia", "Vanille", "Vainilla", "Vanille", "Ваниль", "Baunilha", "Vanille", "Wanilia")},
		{"Ice Cream", tr("Ice Cream", "Ġelat", "Gelato", "Glace", "Helado", "Eis", "Мороженое", "Gelado", "IJs", "Lody")},
		{"Cream", tr("Cream", "Krema", "Panna", "Crème", "Nata", "Sahne", "Сливки", "Natas", "Room", "Śmietana")},
		{"Cake", tr("Cake", "Kejk", "Torta", "Gâteau", "Tarta", "Kuchen", "Торт", "Bolo", "Taart", "Ciasto")},
		{"Pie", tr("Pie", "Torta", "Crostata", "Tarte", "Pastel", "Pastete", "Пирог", "Tarte", "Taart", "Placek")},
		{"Cookie", tr("Cookie", "Biskott", "Biscotto", "Biscuit", "Galleta", "Keks", "Печенье", "Biscoito", "Koekje", "Ciastko")},
		{"Coffee", tr("Coffee", "Kafè", "Caffè", "Café", "Café", "Kaffee", "Кофе", "Café", "Koffie", "Kawa")},
		{"Tea", tr("Tea", "Te", "Tè", "Thé", "Té", "Tee", "Чай", "Chá", "Thee", "Herbata")},
		{"Water", tr("Water", "Ilma", "Acqua", "Eau", "Agua", "Wasser", "Вода", "Água", "Water", "Woda")},
		{"Juice", tr("Juice", "Meraq", "Succo", "Jus", "Zumo", "Saft", "Сок", "Sumo", "Sap", "Sok")},
		{"Milkshake", tr("Milkshake", "Milkshake", "Frappè", "Milk-shake", "Batido", "Milchshake", "Молочный коктейль", "Batido", "Milkshake", "Koktajl Mleczny")},
		{"Milk", tr("Milk", "Ħalib", "Latte", "Lait", "Leche", "Milch", "Молоко", "Leite", "Melk", "Mleko")},
		{"Soda", tr("Soda", "Soda", "Bibita", "Soda", "Refresco", "Limonade", "Газировка", "Refrigerante", "Frisdrank", "Napój Gazowany")},
		{"Beer", tr("Beer", "Birra", "Birra", "Bière", "Cerveza", "Bier", "Пиво", "Cerveja", "Bier", "Piwo")},
		{"Wine", tr("Wine", "Inbid", "Vino", "Vin", "Vino", "Wein", "Вино", "Vinho", "Wijn", "Wino")},
		{"Honey", tr("Honey", "Għasel", "Miele", "Miel", "Miel", "Honig", "Мёд", "Mel", "Honing", "Miód")},
		{"Butter", tr("Butter", "Butir", "Burro", "Beurre", "Mantequilla", "Butter", "Масло", "Manteiga", "Boter", "Masło")},
		{"Spicy", tr("Spicy", "Pikkanti", "Piccante", "Épicé", "Picante", "Scharf", "Острый", "Picante", "Pittig", "Ostry")},
		{"Classic", tr("Classic", "Klassiku", "Classico", "Classique", "Clásico", "Klassisch", "Классический", "Clássico", "Klassiek", "Klasyczny")},
		{"Grilled", tr("Grilled", "Mixwi", "Grigliato", "Grillé", "A la Parrilla", "Gegrillt", "На гриле", "Grelhado", "Gegrild", "Grillowany")},
		{"Fried", tr("Fried", "Moqli", "Fritto", "Frit", "Frito", "Frittiert", "Жареный", "Frito", "Gefrituurd", "Smażony")},
		{"Fresh", tr("Fresh", "Frisk", "Fresco", "Frais", "Fresco", "Frisch", "Свежий", "Fresco", "Vers", "Świeży")},
		{"Double", tr("Double", "Doppju", "Doppio", "Double", "Doble", "Doppelt", "Двойной", "Duplo", "Dubbel", "Podwójny")},
	}
}

func uiText() map[string]Translations {
	return map[string]Translations{
		"welcome": tr("Welcome to AROMA", "Merħba għal AROMA", "Benvenuti da AROMA", "Bienvenue chez AROMA", "Bienvenido a AROMA",
			"Willkommen bei AROMA", "Добро пожаловать в AROMA", "Bem-vindo ao AROMA", "Welkom bij AROMA", "Witamy w AROMA"),
		"dineIn": tr("Dine In", "Tiekol Hawn", "Mangiare qui", "Sur place", "Comer aquí",
			"Hier essen", "В зале", "Comer aqui", "Hier eten", "Na miejscu"),
		"takeaway": tr("Takeaway", "Take Away", "Da asporto", "À emporter", "Para llevar",
			"Zum Mitnehmen", "С собой", "Para levar", "Afhalen", "Na wynos"),
		"addToCart": tr("Add to Cart", "Żid mal-Karrettun", "Aggiungi al carrello", "Ajouter au panier", "Añadir al carrito",
			"In den Warenkorb", "В корзину", "Adicionar ao carrinho", "In winkelwagen", "Dodaj do koszyka"),
		"cancelOrder": tr("Cancel Order", "Ikkanċella l-Ordni", "Annulla ordine", "Annuler la commande", "Cancelar pedido",
			"Bestellung abbrechen", "Отменить заказ", "Cancelar pedido", "Bestelling annuleren", "Anuluj zamówienie"),
		"completeOrder": tr("Complete Order", "Ikkompleta l-Ordni", "Completa ordine", "Finaliser la commande", "Completar pedido",
			"Bestellung abschließen", "Оформить заказ", "Concluir pedido", "Bestelling afronden", "Złóż zamówienie"),
		"missingFields": tr("Please fill in both name and email", "Jekk jogħġbok imla l-isem u l-email", "Inserisci nome ed email",
			"Veuillez saisir le nom et l'e-mail", "Por favor, introduce nombre y correo electrónico", "Bitte Name und E-Mail ausfüllen",
			"Пожалуйста, укажите имя и email", "Por favor, preencha o nome e o email", "Vul zowel naam als e-mail in", "Podaj imię i adres e-mail"),
		"invalidEmail": tr("Please enter a valid email address", "Jekk jogħġbok daħħal indirizz tal-email validu", "Inserisci un indirizzo email valido",
			"Veuillez saisir une adresse e-mail valide", "Introduce un correo electrónico válido", "Bitte eine gültige E-Mail-Adresse eingeben",
			"Введите корректный адрес email", "Introduza um endereço de email válido", "Voer een geldig e-mailadres in", "Podaj poprawny adres e-mail"),
		"orderSuccess": tr("Order placed successfully!", "L-ordni saret b'suċċess!", "Ordine effettuato con successo!", "Commande passée avec succès !",
			"¡Pedido realizado con éxito!", "Bestellung erfolgreich aufgegeben!", "Заказ успешно оформлен!", "Pedido realizado com sucesso!",
			"Bestelling succesvol geplaatst!", "Zamówienie złożone pomyślnie!"),
		"orderError": tr("Order failed", "L-ordni falliet", "Ordine non riuscito", "La commande a échoué", "El pedido ha fallado",
			"Bestellung fehlgeschlagen", "Не удалось оформить заказ", "O pedido falhou", "Bestelling mislukt", "Zamówienie nie powiodło się"),
	}
}
