package catalog

// Marketing copy is owned by the content team and treated as opaque data here.
var defaultDestinations = []Destination{
	{
		Slug:       "paris-1889",
		Name:       "Paris 1889",
		Period:     "14 juillet 1889",
		Location:   "Paris, France",
		ShortPitch: "Vivez l'Exposition universelle et l'inauguration de la Tour Eiffel en pleine Belle Époque.",
		LongDescription: "Plongez au cœur du Paris de 1889, une ville en pleine effervescence culturelle et technologique. " +
			"L'Exposition universelle bat son plein, la Tour Eiffel vient d'être inaugurée, et les boulevards haussmanniens " +
			"vibrent au rythme des fiacres et des cafés littéraires. Rencontrez Gustave Eiffel, goûtez la cuisine de l'époque, " +
			"et assistez aux spectacles du Moulin Rouge naissant. Une immersion inoubliable dans la Ville Lumière à son apogée.",
		Activities: []string{
			"Visite guidée de l'Exposition universelle",
			"Montée privée de la Tour Eiffel avec Gustave Eiffel",
			"Dîner gastronomique dans un restaurant Belle Époque",
			"Balade en fiacre sur les Champs-Élysées",
			"Soirée cabaret au Moulin Rouge originel",
			"Atelier de peinture impressionniste à Montmartre",
		},
		Warnings: []string{
			"Risque sanitaire modéré — vaccinations recommandées",
			"Ne pas mentionner les événements futurs (guerres mondiales, etc.)",
			"Vêtements d'époque obligatoires fournis à l'arrivée",
			"Pas de photographie visible — appareil dissimulé fourni",
		},
		Price:           "2 450 €",
		DurationOptions: []string{"1 jour", "3 jours", "1 semaine"},
		Tags:            []string{"Culture", "Gastronomie", "Art", "Histoire"},
	},
	{
		Slug:       "cretace",
		Name:       "Crétacé",
		Period:     "−68 millions d'années",
		Location:   "Amérique du Nord (futur Montana)",
		ShortPitch: "Expédition encadrée au milieu des dinosaures. Sensations fortes garanties.",
		LongDescription: "Embarquez pour l'aventure la plus extrême jamais proposée : une expédition au Crétacé supérieur, " +
			"68 millions d'années avant notre ère. Observez des T-Rex, Triceratops et Ptéranodons dans leur habitat naturel " +
			"depuis notre base sécurisée. Chaque sortie est encadrée par des paléontologues armés et des guides temporels " +
			"expérimentés. Attention : cette destination est classée Niveau 5 — Danger Extrême. Réservée aux voyageurs audacieux.",
		Activities: []string{
			"Safari dinosaures en véhicule blindé",
			"Observation d'un nid de Vélociraptor (à distance sécurisée)",
			"Cours de survie en milieu préhistorique",
			"Collecte d'échantillons botaniques du Crétacé",
			"Session photo avec Tricératops (encadrée)",
			"Survol en drone des plaines du Crétacé",
		},
		Warnings: []string{
			"Danger extrême — Niveau 5/5. Assurance décès obligatoire",
			"Port du bracelet de rappel d'urgence obligatoire en permanence",
			"Interdiction formelle de quitter le périmètre sécurisé sans guide",
			"Aucun objet moderne ne doit être abandonné sur place",
			"Risque allergique élevé — flore inconnue",
		},
		Price:           "8 900 €",
		DurationOptions: []string{"1 jour", "3 jours"},
		Tags:            []string{"Aventure", "Danger", "Nature", "Science"},
	},
	{
		Slug:       "florence-1504",
		Name:       "Florence 1504",
		Period:     "Printemps 1504",
		Location:   "Florence, Italie",
		ShortPitch: "Plongez dans la Renaissance italienne : art, génie et intrigues politiques.",
		LongDescription: "Bienvenue dans la Florence de 1504, berceau de la Renaissance. Michel-Ange achève son David, " +
			"Léonard de Vinci perfectionne ses inventions, et Machiavel tisse ses intrigues à la cour des Médicis. " +
			"Participez à des ateliers d'art dans les botteghe florentines, assistez au dévoilement du David, et naviguez " +
			"les eaux troubles de la politique italienne. Une destination pour les amoureux d'art, de culture et de mystère.",
		Activities: []string{
			"Atelier de sculpture avec un élève de Michel-Ange",
			"Visite de l'atelier de Léonard de Vinci",
			"Dîner à la cour des Médicis",
			"Cours de fresque dans une bottega florentine",
			"Promenade guidée dans le Florence de la Renaissance",
			"Observation du dévoilement du David",
		},
		Warnings: []string{
			"Intrigues politiques fréquentes — éviter de prendre parti",
			"Risque d'empoisonnement lors des banquets — suivre les consignes du guide",
			"Vêtements Renaissance obligatoires fournis",
			"Ne pas révéler les connaissances scientifiques modernes",
		},
		Price:           "3 200 €",
		DurationOptions: []string{"1 jour", "3 jours", "1 semaine"},
		Tags:            []string{"Art", "Culture", "Histoire", "Intrigue"},
	},
}
