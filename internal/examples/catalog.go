package examples

// DefaultCatalog returns the built-in reference amounts. Each call returns a
// fresh slice so callers may patch values without affecting other stores.
func DefaultCatalog() []Example {
	return []Example{
		// Budgets et institutions
		{ID: "unesco", Value: 289000000, Label: "le budget annuel de l'UNESCO (2025)"},
		{ID: "armees", Value: 50500000000, Label: "le budget du ministère des Armées (2025)"},
		{ID: "education", Value: 64500000000, Label: "le budget du ministère de l'Éducation nationale (2025)"},
		{ID: "securite", Value: 17000000000, Label: "le budget du ministère de l'Intérieur (2025)"},
		{ID: "transition_eco", Value: 39000000000, Label: "le budget du ministère de la Transition écologique et de la Cohésion des territoires (2025)"},
		{ID: "justice", Value: 10500000000, Label: "le budget du ministère de la Justice (2025)"},
		{ID: "affaires_etrangeres", Value: 6000000000, Label: "le budget du ministère des Affaires étrangères (2025)"},
		{ID: "culture", Value: 4000000000, Label: "le budget du ministère de la Culture (2025)"},
		{ID: "travail", Value: 53600000000, Label: "le budget du ministère du Travail, de la Santé, des Solidarités et des Familles (2025)"},
		{ID: "ue", Value: 199000000000, Label: "le budget annuel de l'UE (2025)"},

		// Salaires et revenus
		{ID: "mbappe", Value: 82000000, Label: "le salaire annuel de Kylian Mbappé (2025)"},
		{ID: "pdg", Value: 6500000, Label: "la rémunération annuelle moyenne (fixe + variable) d'un PDG du CAC 40"},
		{ID: "macron", Value: 192456, Label: "la rémunération annuelle brute estimée d'Emmanuel Macron"},
		{ID: "depute", Value: 91649, Label: "la rémunération annuelle brute estimée d'un député"},
		{ID: "senateur", Value: 91649, Label: "la rémunération annuelle brute estimée d'un sénateur"},
		{ID: "ministre", Value: 128304, Label: "la rémunération annuelle brute estimée d'un ministre"},

		// Postes publics
		{ID: "infirmiere", Value: 46000, Label: "le salaire brut annuel d'une infirmière"},
		{ID: "policier", Value: 46000, Label: "le salaire brut annuel d'un policier"},
		{ID: "pompier", Value: 44700, Label: "le salaire brut annuel d'un sapeur-pompier"},
		{ID: "professeur", Value: 46000, Label: "le salaire brut annuel d'un professeur"},
		{ID: "nounou", Value: 20000, Label: "le salaire brut annuel d'une auxiliaire de crèche"},

		// Immobilier et biens
		{ID: "eti", Value: 1324000000000, Label: "la capitalisation totale du CAC 40 (31/12/2025)"},
		{ID: "appartement_paris", Value: 565000, Label: "le prix moyen d'un appartement à Paris"},
		{ID: "superyacht", Value: 150000000, Label: "le prix d'un superyacht de luxe"},
		{ID: "avion_presidentiel", Value: 225000000, Label: "le coût estimé d'acquisition et d'aménagement de l'avion présidentiel français (A330)"},

		// Projets militaires et industriels
		{ID: "suffren", Value: 1500000000, Label: "le prix d'un sous-marin Suffren"},
		{ID: "epr", Value: 19000000000, Label: "le coût de construction de la centrale EPR de Flamanville"},
		{ID: "pang", Value: 10000000000, Label: "le coût de construction d'un porte-avions PANG"},
		{ID: "ariane", Value: 115000000, Label: "le coût d'un lancement d'Ariane 6"},

		// Grands projets et infrastructures
		{ID: "jo_paris", Value: 6650000000, Label: "les dépenses publiques estimées liées aux JO de Paris 2024"},
		{ID: "tunnel_manche", Value: 50000000000, Label: "le coût de construction du tunnel sous la Manche (ajusté de l'inflation)"},
		{ID: "manhattan", Value: 28500000000, Label: "le coût de construction du Projet Manhattan (ajusté de l'inflation)"},
		{ID: "messmer", Value: 130000000000, Label: "le coût de construction du Plan Messmer (ajusté de l'inflation)"},
		{ID: "apollo", Value: 220000000000, Label: "le coût de construction du programme Apollo (ajusté de l'inflation)"},
		{ID: "cern", Value: 5250000000, Label: "le coût de construction du LHC (au CERN) (ajusté de l'inflation)"},
		{ID: "iss", Value: 210000000000, Label: "le coût de construction de la Station spatiale internationale (ISS) (ajusté de l'inflation)"},
		{ID: "iter", Value: 25000000000, Label: "le coût de construction du Projet ITER"},
		{ID: "hinkley", Value: 5000000000, Label: "le coût de construction de la centrale de Hinkley Point C"},

		// Monuments français
		{ID: "tour_eiffel", Value: 35000000, Label: "le coût de construction de la Tour Eiffel (ajusté de l'inflation)"},
		{ID: "arc_triomphe", Value: 70000000, Label: "le coût de construction de l'Arc de Triomphe (ajusté de l'inflation)"},
		{ID: "opera_garnier", Value: 330000000, Label: "le coût de construction de l'Opéra Garnier (ajusté de l'inflation)"},
		{ID: "centre_pompidou", Value: 150000000, Label: "le coût de construction du Centre Pompidou (ajusté de l'inflation)"},
		{ID: "grande_arche", Value: 240000000, Label: "le coût de construction de la Grande Arche de La Défense (ajusté de l'inflation)"},
		{ID: "opera_bastille", Value: 775000000, Label: "le coût de construction de l'Opéra Bastille (ajusté de l'inflation)"},
		{ID: "pyramide_louvre", Value: 25000000, Label: "le coût de construction de la Pyramide du Louvre (ajusté de l'inflation)"},
		{ID: "stade_france", Value: 575000000, Label: "le coût de construction du Stade de France (ajusté de l'inflation)"},
		{ID: "pont_normandie", Value: 650000000, Label: "le coût de construction du Pont de Normandie (ajusté de l'inflation)"},
		{ID: "viaduc_millau", Value: 560000000, Label: "le coût de construction du Viaduc de Millau (ajusté de l'inflation)"},

		// Marchés et valeurs boursières
		{ID: "gold_market_cap", Value: 26000000000000, Label: "la capitalisation estimée du marché mondial de l'or (au 31/12/2025)"},
		{ID: "btc_market_cap", Value: 1500000000000, Label: "la capitalisation de tous les bitcoins (au 31/12/2025)"},
		{ID: "apple_market_cap", Value: 3423000000000, Label: "la capitalisation boursière d'Apple (au 31/12/2025)"},
		{ID: "google_market_cap", Value: 3149000000000, Label: "la capitalisation boursière de Google (au 31/12/2025)"},
		{ID: "amazon_market_cap", Value: 2102000000000, Label: "la capitalisation boursière d'Amazon (au 31/12/2025)"},
		{ID: "tesla_market_cap", Value: 1277000000000, Label: "la capitalisation boursière de Tesla (au 31/12/2025)"},
		{ID: "fortune_arnault", Value: 172800000000, Label: "l'estimation de la fortune de Bernard Arnault (au 31/12/2025)"},
		{ID: "pib_france", Value: 2980000000000, Label: "le PIB de la France (2025)"},

		// Divertissement
		{ID: "avatar", Value: 340000000, Label: "le budget d'Avatar (ajusté de l'inflation)"},

		// Petit quotidien
		{ID: "frites", Value: 1, Label: "une portion de frites à la cantine"},
		{ID: "frites_double", Value: 2, Label: "une double portion de frites à la cantine"},

		// Publics
		{ID: "place_prison", Value: 270000, Label: "le coût de construction d'une place de prison"},
	}
}
