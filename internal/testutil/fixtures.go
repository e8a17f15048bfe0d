package testutil

import "github.com/claraval/serein/internal/domain"

// Questionnaire returns a small but complete question set covering every
// role, with scoring and visibility rules, shared across package tests.
func Questionnaire() *domain.Questionnaire {
	return &domain.Questionnaire{
		ID:          "bilan-test",
		Name:        "Bilan",
		Start:       "accueil",
		SafetyBlock: "securite",
		BaseOrder:   []string{"accueil", "themes", "posture", "energie"},
		Blocks: []domain.Block{
			{
				ID: "accueil", Role: domain.RoleTone, Type: domain.BlockSingleChoice,
				Prompt: "Comment vous sentez-vous en arrivant ici ?", Required: true, Priority: 10,
				Options: []domain.Option{
					{ID: "charge", Label: "Sous pression, chargé·e"},
					{ID: "flou", Label: "Dans le flou"},
					{ID: "determination", Label: "Décidé·e à avancer"},
				},
			},
			{
				ID: "themes", Role: domain.RoleThemes, Type: domain.BlockMultiChoice,
				Prompt: "Qu'est-ce qui pèse en ce moment ?", Required: true, Priority: 9,
				MinSelect: 1, MaxSelect: 3,
				Options: []domain.Option{
					{ID: "travail", Label: "Le travail"},
					{ID: "finances", Label: "Les finances"},
					{ID: "famille", Label: "La famille"},
					{ID: "plusieurs", Label: "Plusieurs choses à la fois"},
				},
				Scoring: []domain.ScoringRule{
					{Domain: "charge", ValueMap: map[string]int{"travail": 8, "finances": 8, "famille": 6, "plusieurs": 10}},
				},
			},
			{
				ID: "posture", Role: domain.RolePosture, Type: domain.BlockMultiChoice,
				Prompt: "Comment tenez-vous ?", MinSelect: 1, Priority: 8,
				Options: []domain.Option{
					{ID: "fatigue", Label: "Fatigué·e"},
					{ID: "effort", Label: "Je tiens par l'effort"},
					{ID: "retrait", Label: "En retrait"},
				},
			},
			{
				ID: "energie", Role: domain.RoleEnergy, Type: domain.BlockSingleChoice,
				Prompt: "Votre énergie aujourd'hui ?", Required: true, Priority: 7,
				Options: []domain.Option{
					{ID: "faible", Label: "Faible"},
					{ID: "moyenne", Label: "Moyenne"},
					{ID: "haute", Label: "Haute"},
				},
			},
			{
				ID: "charge_echelle", Type: domain.BlockScale,
				Prompt:   "De 0 à 10, à quel point vous sentez-vous débordé·e ?",
				Priority: 3, ScaleMin: 0, ScaleMax: 10,
				Scoring: []domain.ScoringRule{{Domain: "charge", ScalePer: 2}},
			},
			{
				ID: "travail_detail", Type: domain.BlockMultiChoice,
				Prompt: "Au travail, qu'est-ce qui use le plus ?",
				Domain: "travail", Priority: 2, Tags: []string{"deep"},
				Visible: &domain.Condition{Op: domain.OpIncludes, Answer: "themes", Value: "travail"},
				Options: []domain.Option{
					{ID: "surcharge", Label: "La surcharge"},
					{ID: "tension", Label: "Les tensions d'équipe"},
				},
				Scoring: []domain.ScoringRule{{Domain: "travail", Points: 12}},
			},
			{
				ID: "securite", Role: domain.RoleSafety, Type: domain.BlockFreeText,
				Prompt:   "Vous n'êtes pas seul·e. Souhaitez-vous noter ce qui se passe ?",
				Priority: 100,
			},
			{
				ID: "sortie", Role: domain.RoleExit, Type: domain.BlockSingleChoice,
				Prompt: "Souhaitez-vous continuer ?", Priority: 1,
				Options: []domain.Option{
					{ID: "continuer", Label: "Continuer"},
					{ID: "arreter", Label: "Arrêter ici"},
				},
			},
		},
	}
}

// Packs returns a pack set with enough pool depth for bounded, deduplicated
// composition in tests.
func Packs() *domain.PackSet {
	return &domain.PackSet{
		MinSentences: 6,
		MaxSentences: 12,
		Roots: map[domain.RootCategory][]string{
			domain.RootFatigue: {
				"Votre corps demande une pause, et c'est une information, pas une faiblesse.",
				"La fatigue que vous décrivez mérite d'être prise au sérieux.",
				"Quand l'énergie baisse, chaque petite chose compte double.",
			},
			domain.RootClarification: {
				"Mettre des mots sur ce qui se passe est déjà un premier tri.",
				"Ce bilan sert à y voir plus clair, pas à tout résoudre d'un coup.",
				"Prenons le temps de poser les choses une par une.",
			},
			domain.RootSortie: {
				"Vous avez le droit de vous arrêter ici.",
				"S'arrêter est aussi une façon de prendre soin de soi.",
			},
		},
		Openings: map[string][]string{
			"charge": {
				"Vous portez beaucoup en ce moment.",
				"La pression que vous décrivez est bien réelle.",
				"Ce poids n'est pas une vue de l'esprit.",
			},
			"flou": {
				"Tout semble mélangé, et c'est déjà une information.",
				"Le flou n'est pas un échec, c'est un état passager.",
			},
		},
		Themes: map[string][]string{
			"travail": {
				"Le travail occupe une place envahissante dans vos journées.",
				"Ce que vous vivez au travail déborde sur le reste.",
				"Votre rapport au travail mérite d'être rediscuté.",
			},
			"finances": {
				"Les questions d'argent créent une tension de fond.",
				"L'incertitude financière pèse sur chaque décision.",
			},
			"plusieurs": {
				"Plusieurs fronts sont ouverts en même temps.",
				"Quand tout arrive à la fois, prioriser devient impossible.",
			},
		},
		Postures: map[string][]string{
			"fatigue": {"Vous avancez malgré une fatigue installée."},
			"effort":  {"Vous tenez surtout par l'effort, et ça se paie."},
		},
		Vecu: map[string][]string{
			"surmenage": {"Le surmenage que vous traversez laisse des traces."},
		},
		Besoins: map[string][]string{
			"repos": {"Le besoin de repos revient en premier."},
		},
		Energy: map[domain.EnergyLevel][]string{
			domain.EnergyLow:    {"Avec une énergie basse, viser petit est la bonne échelle."},
			domain.EnergyMedium: {"Votre énergie permet des pas réguliers."},
			domain.EnergyHigh:   {"Votre énergie est un appui pour la suite."},
		},
		Variants: map[domain.VariantKey][]string{
			domain.VariantMain: {
				"Ce qui compte maintenant, c'est le mouvement d'ensemble.",
				"Gardez en tête la direction plutôt que la vitesse.",
			},
			domain.VariantStep: {
				"Commencez par le plus petit pas possible.",
				"Un seul geste aujourd'hui suffit.",
			},
			domain.VariantCalm: {
				"Rien n'oblige à tout régler ce soir.",
				"Le calme se construit par couches fines.",
			},
			domain.VariantNorm: {
				"Ce que vous ressentez est une réaction normale à une situation inhabituelle.",
				"Beaucoup de personnes dans votre situation décrivent la même chose.",
			},
		},
		Closings: []string{
			"Vous pouvez revenir à ce bilan quand vous voulez.",
			"Un pas à la fois suffit largement.",
			"Ce que vous avez posé ici a de la valeur.",
			"Demain est un autre point d'appui.",
			"Soyez aussi patient·e avec vous-même qu'avec un ami.",
			"Rien de tout cela ne vous définit entièrement.",
			"La suite peut rester simple.",
		},
		Combos: []domain.ComboEntry{
			{
				Key:    domain.NewComboKey(domain.FacetTheme, "travail", domain.FacetTheme, "finances"),
				Weight: 6,
				Lines: []string{
					"Quand le travail vacille, les finances suivent, et l'inverse est vrai aussi.",
					"Ces deux pressions se nourrissent l'une l'autre.",
				},
			},
			{
				Key:    domain.NewComboKey(domain.FacetPosture, "fatigue", domain.FacetTheme, "travail"),
				Weight: 8,
				Lines: []string{
					"La fatigue rend chaque journée de travail plus coûteuse qu'elle ne devrait l'être.",
				},
			},
			{
				Key:    domain.NewComboKey(domain.FacetTheme, "plusieurs", domain.FacetTheme, "travail"),
				Weight: 9,
				Lines: []string{
					"Le travail arrive en tête, mais il n'est pas seul sur la pile.",
					"Traiter un front à la fois reste possible, même quand tout se superpose.",
				},
			},
		},
	}
}

// Modules returns a module library spanning several domains plus the core
// pool, with short and long entries for slot-preference tests.
func Modules() []domain.Module {
	return []domain.Module{
		{ID: "resp-478", Title: "Respiration 4-7-8", Minutes: 3, Tags: []string{"respiration", "stabilisateur"}, Domain: "core", Weight: 5},
		{ID: "scan-corps", Title: "Scan corporel", Minutes: 8, Tags: []string{"corps"}, Domain: "core", Weight: 3},
		{ID: "micro-pause", Title: "Micro-pause sensorielle", Minutes: 2, Tags: []string{"micro"}, Domain: "core", Weight: 4},
		{ID: "ancrage-54321", Title: "Ancrage 5-4-3-2-1", Minutes: 4, Tags: []string{"ancrage"}, Domain: "core", Weight: 3},
		{ID: "tri-taches", Title: "Tri des tâches en trois piles", Minutes: 10, Tags: []string{"ecriture"}, Domain: "travail", Weight: 6},
		{ID: "fin-journee", Title: "Rituel de fin de journée", Minutes: 5, Tags: []string{"rituel"}, Domain: "travail", Weight: 4},
		{ID: "budget-photo", Title: "Photo budget sans jugement", Minutes: 10, Tags: []string{"ecriture"}, Domain: "finances", Weight: 5},
		{ID: "depense-pause", Title: "Pause avant dépense", Minutes: 2, Tags: []string{"micro"}, Domain: "finances", Weight: 3},
		{ID: "marche-10", Title: "Marche de dix minutes", Minutes: 10, Tags: []string{"corps"}, Domain: "charge", Weight: 5},
		{ID: "ecrire-decharge", Title: "Écriture de décharge", Minutes: 6, Tags: []string{"ecriture"}, Domain: "charge", Weight: 4},
		{ID: "respiration-coher", Title: "Cohérence cardiaque", Minutes: 5, Tags: []string{"respiration", "stabilisateur"}, Domain: "charge", Weight: 6},
	}
}
