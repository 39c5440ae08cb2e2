package receipt

// CategorySet binds a category tag to its keyword list. Order matters:
// classification walks sets in declaration order and stops on the first hit.
type CategorySet struct {
	Tag      string
	Keywords []string
}

// Gazetteer holds every keyword table the extractors consult: language
// keywords, total labels, the item blacklist, the merchant list and the
// category mappings. A Gazetteer is read-only after construction and is
// shared by all concurrent pipeline runs; tests substitute small fixtures.
type Gazetteer struct {
	FrenchKeywords  []string // lowercase, matched as whole tokens
	EnglishKeywords []string

	ItemBlacklist []string // lowercase, administrative words rejected from item names

	DefiniteTotalLabels []string // uppercase phrases that pin the payable total
	TotalLabels         []string // uppercase, broader total-like labels

	KnownMerchants       []string // lowercase retailer names
	InvalidTitleKeywords []string // lowercase boilerplate words that disqualify a title line

	Categories      []CategorySet // primary category -> keyword mapping
	BrandCategories []CategorySet // fallback category -> brand-name mapping
}

// DefaultGazetteer returns the built-in bilingual tables. The process builds
// it once at start and never mutates it.
func DefaultGazetteer() *Gazetteer {
	return &Gazetteer{
		FrenchKeywords: []string{
			"total", "date", "produit", "prix", "quantité", "remise", "tva", "ticket", "facture", "paiement",
			"supermarché", "magasin", "carrefour", "intermarché", "e.leclerc", "monoprix", "auchan", "lidl", "casino",
			"franprix", "picard", "leclerc", "cora", "système u", "boulanger", "biocoop", "aldi", "grand frais",
			"marché", "ravifruit", "hyper u", "edelweiss", "super u",
		},
		EnglishKeywords: []string{
			"total", "date", "item", "price", "quantity", "discount", "tax", "receipt", "invoice", "payment",
			"supermarket", "store", "walmart", "target", "costco", "sainsbury", "tesco", "asda", "morrisons", "waitrose",
			"aldi", "iceland", "marks and spencer", "lidl", "whole foods", "best buy", "publix", "trader joe", "rite aid",
			"kroger", "safeway", "meijer", "food lion", "harris teeter", "circle k", "supervalu", "big y",
		},
		ItemBlacklist: []string{
			"subtotal", "total", "grand total", "tax", "vat", "sales tax", "service charge", "delivery fee",
			"tip", "change", "cash", "card", "credit", "debit", "payment", "balance", "discount", "coupon",
			"refunded", "refund", "invoice", "receipt", "order", "transaction", "authorization", "cashier",
			"server", "table", "terminal", "store", "address", "phone", "email", "date", "time", "website",
			"thanks", "welcome", "visit again", "signature", "customer copy", "merchant copy", "restapayer",
			"tva", "payer", "paid", "ref", "voucher", "gift", "promo", "return", "ticket", "ticket #", "item",
			"due", "savings", "loyalty", "bonus", "conditions", "policy",
		},
		DefiniteTotalLabels: []string{
			"TOTAL A PAYER", "GRAND TOTAL", "TOTAL DUE", "MONTANT DÛ",
			"AMOUNT TO PAY", "NET A PAYER", "SOMME A PAYER",
		},
		TotalLabels: []string{
			"TOTAL", "AMOUNT", "TTC", "TOTAL DUE", "AMOUNT DUE", "GRAND TOTAL",
			"TO PAY", "TOTAL A PAYER", "NET", "NET TOTAL", "BALANCE", "SUM", "TOTAL AMOUNT",
			"MONTANT", "SOMME", "TOTAL TTC", "TOTAL HT", "PAYÉ", "PAID", "DUE",
			"BALANCE DUE", "TOTAL PAID", "TOTAL PRICE", "A PAYER", "NET A PAYER",
		},
		KnownMerchants: []string{
			// global
			"walmart", "costco", "carrefour", "tesco", "aldi", "lidl", "metro", "amazon", "ebay",
			"target", "ikea", "7-eleven", "spar", "auchan", "big bazaar", "reliance", "dmart",
			"flipkart", "shopee", "rakuten", "aliexpress", "best buy", "home depot", "lowe's",
			// usa
			"kroger", "safeway", "publix", "meijer", "h-e-b", "albertsons", "whole foods", "trader joe's",
			"sam's club", "bj's", "cvs", "walgreens", "dollar tree", "dollar general", "family dollar",
			"macy's", "nordstrom", "jcpenney", "kohl's", "bloomingdale's", "wegmans", "food lion",
			"rite aid", "cost plus", "fred meyer",
			// uk
			"sainsbury's", "asda", "waitrose", "morrisons", "co-op", "marks & spencer", "boots",
			"argos", "iceland", "b&m", "poundland", "superdrug",
			// canada
			"loblaws", "shoppers drug mart", "sobeys", "no frills", "real canadian superstore",
			"canadian tire", "london drugs",
			// australia
			"woolworths", "coles", "iga", "kmart", "big w", "bunnings",
			// india
			"reliance fresh", "reliance digital", "spencer's", "more", "star bazaar",
			"nature's basket", "myntra", "nykaa",
			// europe
			"e.leclerc", "intermarché", "penny market", "billa", "netto", "rewe", "système u", "monoprix",
			"migros", "coop", "jumbo", "albert heijn", "sklavenitis", "delhaize",
			// asia
			"aeon", "don quijote", "familymart", "lawson", "7-eleven japan", "gs25", "emart", "lotte mart",
			"fairprice", "cold storage", "guardian", "watsons",
			// fast food
			"mcdonald's", "kfc", "subway", "starbucks", "burger king", "domino's", "pizza hut", "dunkin",
			"tim hortons", "chick-fil-a", "taco bell", "five guys", "wendy's", "popeyes",
		},
		InvalidTitleKeywords: []string{
			// english
			"total", "amount", "subtotal", "vat", "tax", "tip", "change", "balance",
			"invoice", "receipt", "date", "time", "cash", "card", "payment", "ref",
			"id", "order", "number", "merchant", "terminal", "discount", "auth",
			"code", "paid", "return", "loyalty", "store", "summary", "price", "qty",
			"description", "unit", "transaction", "thank", "you", "visit", "welcome",
			"tel", "phone", "address", "www", ".com", "euro", "usd", "items",
			// french
			"tva", "caissier", "vendeur", "achat", "client", "serveur", "fiscal",
			"reçu", "ticket", "facture", "heure", "paiement", "especes",
			"espèces", "carte", "montant", "remise", "remboursement", "annulation",
			"merci", "visite", "siret", "numéro", "adresse", "produits", "net", "brut",
			"sous-total", "net à payer", "à payer", "cb", "remerciements", "resto",
			"info", "vente", "information",
		},
		Categories: []CategorySet{
			{Tag: "food", Keywords: []string{
				"restaurant", "cafe", "diner", "meal", "food", "bar", "pub", "pizzeria", "bistro", "brasserie",
				"buffet", "catering", "takeout", "delivery", "snack", "grill", "sandwich", "pastry", "bakery",
				"fast food", "salad", "coffee", "coffee shop", "breakfast", "brunch", "lunch", "dinner", "tavern",
				"boucherie", "patisserie", "sushis", "soupe", "sushibar", "plat du jour", "bar à salade",
				"bar à burger", "salle à manger", "café-restaurant", "bistrot", "restaurant rapide",
			}},
			{Tag: "groceries", Keywords: []string{
				"market", "grocery", "supermarket", "store", "shop", "hypermarket", "convenience store",
				"corner store", "organic store", "butcher", "green grocer", "bakery", "fruit shop", "deli",
				"liquor store", "wine shop", "corner market", "bulk store", "wholesale", "discount store",
				"grocery store", "superette", "épicerie", "boucherie", "charcuterie", "fromagerie", "marché",
				"magasin d'alimentation", "épicerie fine", "magasin bio", "supermarché", "supermarché bio",
			}},
			{Tag: "shopping", Keywords: []string{
				"store", "mall", "retail", "shop", "boutique", "fashion", "clothing", "department store", "superstore",
				"outlet", "shopping center", "e-commerce", "shopping mall", "shopping cart", "clothes", "footwear",
				"accessories", "electronics", "apparel", "jewelry", "cosmetics", "shoes", "bags", "purses", "furniture",
				"home goods", "appliances", "bookstore", "toy store", "hardware store", "sporting goods", "garden store",
				"magasin", "magasin de vêtements", "panier", "chaussures", "pantalon", "vêtements", "bijoux",
				"accessoires", "cosmétiques", "magasin de sport", "boutique de mode", "centres commerciaux", "électroniques",
				"boutique en ligne",
			}},
			{Tag: "transportation", Keywords: []string{
				"taxi", "uber", "lyft", "transport", "bus", "train", "plane", "flight", "ride-sharing", "car rental",
				"subway", "tram", "ferry", "bike rental", "car hire", "transportation", "cab", "chauffeur", "shuttle",
				"scooter", "chauffeur privé", "transport public", "métro", "train de banlieue", "tramway", "vélo",
				"location de voiture", "covoiturage", "location de scooter", "taxi collectif", "moto-taxi", "trum",
			}},
			{Tag: "utilities", Keywords: []string{
				"electric", "water", "gas", "utility", "electricity bill", "water bill", "gas bill", "internet",
				"mobile bill", "telephone bill", "sewer", "cable bill", "wifi", "broadband", "heating", "cooling",
				"electricity", "public service", "consommation d'électricité", "facture d'eau", "facture de gaz",
				"facture de téléphone", "facture d'internet", "facture d'électricité", "chauffage", "climatisation",
				"services publics", "gaz naturel", "internet haut débit", "facture internet", "service public", "tabac",
			}},
			{Tag: "entertainment", Keywords: []string{
				"cinema", "movie", "theater", "concert", "show", "performance", "sports", "music", "event", "festival",
				"art", "gallery", "museum", "exhibition", "game", "theatre", "play", "live performance", "karaoke",
				"stand-up", "comedy", "circus", "musical", "comédie", "spectacle", "film", "cinéma", "théâtre",
				"musique", "événement", "exposition", "musee", "galerie d'art", "jeu vidéo", "jeu de société",
				"comédie musicale", "fête", "soirée", "karaoké", "spectacle vivant",
			}},
			{Tag: "health", Keywords: []string{
				"pharmacy", "drugstore", "clinic", "hospital", "doctor", "dentist", "physiotherapy", "chiropractor",
				"optician", "healthcare", "wellness", "medication", "medicine", "health insurance", "hospital bill",
				"check-up", "prescription", "medicaments", "pharmacie", "hôpital", "dentiste", "médecin", "santé",
				"traitement", "soins médicaux", "assurance santé", "facture de soins", "consultation médicale",
				"médecine", "santé mentale", "opticien", "kinésithérapeute",
			}},
			{Tag: "education", Keywords: []string{
				"tuition", "school", "college", "university", "textbooks", "course", "study", "degree", "graduation",
				"scholarship", "campus", "teacher", "professor", "workshop", "seminar", "lecture", "online learning",
				"école", "université", "collège", "bourse", "livres scolaires", "cours", "études", "formation", "atelier",
				"séminaire", "conférence", "enseignant", "professeur", "diplôme", "apprentissage en ligne",
			}},
			{Tag: "travel", Keywords: []string{
				"flight", "hotel", "booking", "vacation", "tourism", "trip", "airline", "resort", "tour", "destination",
				"cruise", "excursion", "travel insurance", "journey", "luggage", "transport", "car hire", "holiday",
				"travel agency", "flight booking", "réservation", "vol", "voyage", "hôtel", "croisière",
				"agence de voyages", "location de voiture", "assurance voyage", "vacances", "bagages",
			}},
			{Tag: "services", Keywords: []string{
				"cleaning", "maintenance", "repair", "laundry", "plumbing", "electrician", "car service", "cleaning service",
				"housekeeping", "personal assistant", "security", "moving", "delivery", "handyman", "gardening", "petsitting",
				"reparations", "services de nettoyage", "entretien", "plomberie", "électricien", "réparation de voiture",
				"livraison", "déménagement", "jardinage", "assistant personnel", "ménage", "garde d'animaux",
			}},
		},
		BrandCategories: []CategorySet{
			{Tag: "food", Keywords: []string{
				"mcdonald's", "kfc", "subway", "starbucks", "burger king", "domino's", "pizza hut",
				"dunkin", "tim hortons", "chick-fil-a", "taco bell", "five guys", "wendy's", "popeyes",
			}},
			{Tag: "groceries", Keywords: []string{
				"walmart", "costco", "aldi", "lidl", "tesco", "carrefour", "target", "sainsbury's",
				"asda", "waitrose", "morrisons", "safeway", "kroger", "publix", "whole foods", "trader joe's",
				"big bazaar", "reliance fresh", "dmart", "spencer's", "more", "star bazaar", "no frills",
			}},
			{Tag: "shopping", Keywords: []string{
				"amazon", "flipkart", "ebay", "best buy", "ikea", "macy's", "nordstrom", "jcpenney", "kohl's",
				"bloomingdale's", "argos", "marks & spencer", "nykaa", "myntra", "canadian tire", "big w", "kmart",
			}},
			{Tag: "transport", Keywords: []string{
				"uber", "lyft", "bolt", "grab", "ola", "didi", "blablacar", "careem", "metro transit", "gojek",
			}},
			{Tag: "utilities", Keywords: []string{
				"con edison", "pacific gas & electric", "british gas", "edf", "enel", "national grid",
				"hydro one", "e.on", "dominion energy", "xcel energy",
			}},
			{Tag: "entertainment", Keywords: []string{
				"netflix", "spotify", "apple music", "hulu", "disney+", "amazon prime video", "youtube premium",
				"amc theatres", "cinemark", "regal", "xbox", "playstation store", "steam",
			}},
			{Tag: "health", Keywords: []string{
				"cvs", "walgreens", "rite aid", "boots", "superdrug", "shoppers drug mart", "guardian", "watsons",
				"london drugs",
			}},
			{Tag: "education", Keywords: []string{
				"coursera", "udemy", "khan academy", "edx", "linkedin learning", "skillshare", "duolingo",
			}},
			{Tag: "travel", Keywords: []string{
				"expedia", "booking.com", "airbnb", "agoda", "trip.com", "trivago", "skyscanner", "delta", "emirates",
				"united airlines", "air france", "qatar airways", "marriott", "hilton",
			}},
			{Tag: "services", Keywords: []string{
				"fiverr", "upwork", "freelancer", "godaddy", "bluehost", "shopify", "squarespace", "wix",
				"mailchimp", "canva",
			}},
		},
	}
}
