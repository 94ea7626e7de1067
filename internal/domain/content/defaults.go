package content

import "slices"

// Compiled-in baseline content for the public site. It is never mutated at
// runtime: the accessors hand out shallow copies and every edit made through
// the admin surface lives in the Store as custom content layered on top.

var defaultSkillCategories = []SkillCategory{
	{
		ID:    "frontend",
		Title: "Langages & Frontend",
		Skills: []Skill{
			{ID: "html", Name: "HTML5", Icon: "/images/technologies/html.png"},
			{ID: "css", Name: "CSS3", Icon: "/images/technologies/css.png"},
			{ID: "javascript", Name: "JavaScript", Icon: "/images/technologies/JS.png"},
			{ID: "vaadin", Name: "Vaadin", Icon: "/images/technologies/vaadin.png"},
		},
	},
	{
		ID:    "backend",
		Title: "Backend & Frameworks",
		Skills: []Skill{
			{ID: "java", Name: "Java", Icon: "/images/technologies/java.png"},
			{ID: "spring-boot", Name: "Spring Boot", Icon: "/images/technologies/spring-boot.png"},
			{ID: "python", Name: "Python", Icon: "/images/technologies/python.png"},
			{ID: "flask", Name: "Flask", Icon: "/images/technologies/flask.png"},
		},
	},
	{
		ID:    "outils",
		Title: "Outils & Bases de données",
		Skills: []Skill{
			{ID: "docker", Name: "Docker", Icon: "/images/technologies/docker.png"},
			{ID: "git", Name: "Git", Icon: "/images/technologies/git.png"},
			{ID: "postgresql", Name: "PostgreSQL", Icon: "/images/technologies/postgresql.png"},
		},
	},
}

var defaultExperiences = []Experience{
	{
		ID:      "sio-stage-1",
		Title:   "Stagiaire développeur",
		Company: "DINUM NC – Direction du Numérique et de la modernisation",
		Period:  "04 novembre 2024 – 06 décembre 2024",
		Description: "Réalisation d'un POC intégrant NC Connect pour offrir une authentification " +
			"unifiée (SSO) et faciliter la connexion de fournisseurs de données aux applications internes.",
		Technologies: []string{"Python", "Flask", "NC Connect", "OpenID Connect", "JWT", "API REST"},
		Achievements: []string{
			"Conception et réalisation d'un POC fonctionnel avec Flask",
			"Intégration de l'authentification unifiée via NC Connect (SSO)",
			"Mise à disposition d'endpoints REST pour l'accès aux données fournisseurs",
		},
	},
	{
		ID:      "opt-alternance",
		Title:   "Alternant Développeur",
		Company: "Office des postes et télécommunications NC",
		Period:  "08 janvier - 31 décembre",
		Description: "Participation à la conception et à l'évolution d'applications internes. " +
			"Réalisation d'un POC IA-Docubase (fiabilisation des données de factures) et travaux de " +
			"réflexion/POC sur la détection d'anomalies pour soutenir les équipes métier.",
		Technologies: []string{"Java", "SpringBoot", "SpringBatch", "LLM"},
		Achievements: []string{
			"Réalisation POC IA-Docubase : extraction de champs, rapprochement avec les métadonnées, contrôle/validation.",
			"Conception d'un POC de détection d'anomalies : critères règles-based + pistes statistiques/LLM",
			"Mise en place de jeux de tests et suivi de la qualité des données sur lots de factures.",
		},
	},
}

var defaultProjects = []Project{
	{
		ID:    "1",
		Title: "IA-Docubase",
		Description: "Docubase automatise le traitement des factures : centralisation, extraction des " +
			"champs clés, comparaison aux métadonnées et signalement des écarts. Validation/correction " +
			"rapide, puis mise à jour de la GED avec des données fiables.",
		Visual:            "/images/projets/docubase.png",
		Category:          CategoryIA,
		Technologies:      []string{"Spring Boot", "Spring Batch", "Vaadin", "Docker"},
		SkillHighlight:    "Java",
		GitHub:            "#",
		Demo:              "#",
		PrimaryLink:       "#",
		PrimaryLinkLabel:  "Voir le projet",
		HidePrimaryButton: true,
		Features: []string{
			"Extraire automatiquement les champs clés",
			"Mettre en évidence les écarts avec la GED",
			"Mettre à jour la GED avec les données vérifiées",
		},
	},
	{
		ID:    "2",
		Title: "Cyber EscapeGame",
		Description: "Jeu pédagogique de cybersécurité pour lycéens : parcours d'énigmes chronométrés " +
			"avec classement final. Projet de sensibilisation réalisé pour la semaine du Numérique au " +
			"Lycée Dick Ukeiwe.",
		Visual:           "/images/projets/escape-game.png",
		Category:         CategoryWeb,
		Technologies:     []string{"Node.js", "PostgreSQL", "OpenAPI/Swagger", "HTML,CSS,JavaScript"},
		SkillHighlight:   "Node.js",
		GitHub:           "https://github.com/noachuut/EscapeGame",
		Demo:             "#",
		PrimaryLink:      "https://escape-game.btsinfo.nc/",
		PrimaryLinkLabel: "Voir le projet",
		Features: []string{
			"Créer des sessions et gérer les énigmes",
			"Chronométrer les parcours (timer)",
			"Enregistrer la progression et les scores",
		},
	},
	{
		ID:    "3",
		Title: "Jeu Labyrinthe",
		Description: "Mini-jeu de labyrinthe en Python (terminal) réalisé en 1ère année de BTS SIO. " +
			"Le joueur choisit son personnage et a 5 vies pour sortir d'un labyrinthe rempli de pièges.",
		Visual:           "/images/projets/labyrinthGame.png",
		Category:         CategoryAutres,
		Technologies:     []string{"Python"},
		SkillHighlight:   "POO Python",
		GitHub:           "#",
		Demo:             "#",
		PrimaryLink:      "https://github.com/noachuut/LabyrinthGame",
		PrimaryLinkLabel: "Voir le Github",
		Features: []string{
			"Déplacements clavier (z q s d) et affichage en temps réel dans le terminal",
			"Création du labyrinthe",
			"Menus avec règles, lancement du jeu et choix du personnage",
		},
	},
	{
		ID:    "4",
		Title: "TélécabNc - Space4NC",
		Description: "Space4NC, c'est 24 heures pour prototyper un projet entrepreneurial à impact en " +
			"mobilisant les données et technologies spatiales. Première place remportée avec notre " +
			"projet TélécabNC.",
		Visual:           "/images/projets/hackathon.webp",
		Category:         CategoryEvenements,
		Technologies:     []string{"Travail d'équipe", "Prototypage rapide", "Présentation"},
		SkillHighlight:   "Innovation",
		GitHub:           "#",
		Demo:             "#",
		PrimaryLinkLabel: "Voir le Github",
		Features:         []string{""},
	},
	{
		ID:    "5",
		Title: "Hackagou 2024",
		Description: "Journée de défis de cybersécurité, conférences et échanges avec des professionnels " +
			"du secteur. 3ème prix du challenge de cybersécurité dans la catégorie étudiant.",
		Visual:           "/images/projets/hackagou.jpg",
		Category:         CategoryEvenements,
		Technologies:     []string{"Travail d'équipe", "Résolution de problèmes cybersécurité"},
		SkillHighlight:   "Cybersécurité",
		GitHub:           "#",
		Demo:             "#",
		PrimaryLinkLabel: "Voir l'article",
		Features:         []string{""},
	},
}

var defaultCertifications = []Certification{
	{
		ID:   "skills-for-all-cybersecurity",
		Name: "Introduction à la cybersécurité — Skills for All",
		Description: "Formation (6h) d'initiation aux fondamentaux de la cybersécurité : risques " +
			"courants, bonnes pratiques et hygiène numérique. Attestation de suivi.",
		Skills: []string{"Cybersécurité de base", "Menaces et risques", "Bonnes pratiques", "Sensibilisation"},
		Image:  "/images/certifications/cisco.png",
	},
	{
		ID:   "openclassrooms-comprendre-web",
		Name: "Comprendre le Web — OpenClassrooms",
		Description: "Formation (6h) qui explique le fonctionnement du Web : HTTP, DNS, navigateurs, " +
			"hébergement et déploiement simple. Attestation de suivi.",
		Skills: []string{"HTTP/DNS", "Architecture web", "Hébergement", "Déploiement", "Culture web"},
		Image:  "/images/certifications/openclassrooms.png",
	},
	{
		ID:   "skills-for-all-networks",
		Name: "Notions de base sur les réseaux — Skills for All",
		Description: "Formation (20h) sur les fondamentaux réseaux : modèles OSI/TCP-IP, adressage IP, " +
			"commutation/routage de base. Attestation de suivi.",
		Skills: []string{"Réseaux", "Modèle OSI", "TCP/IP", "Adressage IP", "Routage de base"},
		Image:  "/images/certifications/cisco.png",
	},
	{
		ID:   "openclassrooms-html-css",
		Name: "Créez votre site web avec HTML5 et CSS3 — OpenClassrooms",
		Description: "Formation (14h) aux bases du front-end : sémantique HTML5, mise en page CSS " +
			"(Flexbox/Grid), responsive et accessibilité. Attestation de suivi.",
		Skills: []string{"HTML5", "CSS3", "Responsive design", "Flexbox", "Grid", "Accessibilité"},
		Image:  "/images/certifications/openclassrooms.png",
	},
	{
		ID:   "cisco-netacad-linux-unhatched",
		Name: "Linux Unhatched - Cisco NetAcad",
		Description: "Formation (6h) d'initiation à Linux : ligne de commande, arborescence, " +
			"permissions, gestion de paquets. Attestation de suivi.",
		Skills: []string{"Linux", "CLI", "Bash", "Permissions", "Paquets logiciels"},
		Image:  "/images/certifications/cisco.png",
	},
	{
		ID:   "openclassrooms-php-mysql",
		Name: "Concevez votre site web avec PHP et MySQL - OpenClassrooms",
		Description: "Formation (20h) pour réaliser un site dynamique : PHP côté serveur, MySQL, CRUD, " +
			"sécurité et bonnes pratiques. Formation suivie.",
		Skills: []string{"PHP", "MySQL", "SQL/CRUD", "Sécurité web", "MVC basique"},
		Image:  "/images/certifications/openclassrooms.png",
	},
	{
		ID:   "openclassrooms-java",
		Name: "Apprenez à programmer en Java — OpenClassrooms",
		Description: "Formation (10h) d'introduction à Java : bases du langage, POO, exceptions, " +
			"collections et tests simples. Attestation de suivi.",
		Skills: []string{"Java", "Programmation orientée objet", "Exceptions", "Collections", "Tests"},
		Image:  "/images/certifications/openclassrooms.png",
	},
	{
		ID:   "openclassrooms-spring-boot",
		Name: "Créez une application Java avec Spring Boot — OpenClassrooms",
		Description: "Formation : création d'une API REST avec Spring Boot, persistance JPA/Hibernate " +
			"et tests. Attestation de suivi.",
		Skills: []string{"Spring Boot", "REST API", "JPA/Hibernate", "Maven", "Tests"},
		Image:  "/images/certifications/openclassrooms.png",
	},
}

// No baseline tech-watch articles ship with the site; the list only ever
// holds owner-authored entries.
var defaultArticles = []TechWatchArticle{}

var defaultTechWatchProfile = TechWatchProfile{
	DailyDev: DailyDevProfile{
		Description: "Daily.dev est une plateforme gratuite et open-source qui centralise l'actu tech. " +
			"Le contenu vient à moi et devient plus pertinent avec mes clics. J'utilise surtout leur " +
			"extension Chrome : à chaque nouvel onglet, j'ai ma veille sous les yeux.",
		DevCardImage: "/images/veille/devcard.png",
		ProfileLink:  "https://app.daily.dev/morandeaunoa",
	},
	SocialAccounts: []SocialAccount{
		{
			ID:       "yt-1",
			Platform: PlatformYouTube,
			Name:     "Underscore",
			Link:     "https://www.youtube.com/@Underscore_",
			Image:    "/images/projets/underscore.jpg",
			Description: "Décodage des tendances numériques : enjeux, usages et impacts sans buzz ni " +
				"raccourcis. Beaucoup d'interviews et de vidéos sur l'actualité numérique, en vulgarisant " +
				"le plus possible.",
		},
		{
			ID:       "yt-2",
			Platform: PlatformYouTube,
			Name:     "Tech IA News",
			Link:     "https://www.youtube.com/@Tech_IA_news",
			Image:    "/images/projets/technews.jpg",
			Description: "Une chaîne que je regarde souvent pour rester à jour sur l'actualité de " +
				"l'intelligence artificielle. Format court et concret, sans jargon.",
		},
	},
	FavoriteTopic: FavoriteTopic{
		Title: "La place de l'IA dans notre quotidien",
		Content: "Je m'intéresse beaucoup à la façon dont l'intelligence artificielle s'intègre dans " +
			"nos usages au quotidien. À travers ma veille, j'essaie de rester attentif aux enjeux " +
			"éthiques et techniques : les biais, la sécurité des données, la conformité RGPD ou encore " +
			"l'impact sur nos métiers.",
	},
}

func DefaultProjects() []Project              { return slices.Clone(defaultProjects) }
func DefaultExperiences() []Experience        { return slices.Clone(defaultExperiences) }
func DefaultSkillCategories() []SkillCategory { return slices.Clone(defaultSkillCategories) }
func DefaultCertifications() []Certification  { return slices.Clone(defaultCertifications) }
func DefaultArticles() []TechWatchArticle     { return slices.Clone(defaultArticles) }

func DefaultTechWatchProfile() TechWatchProfile { return defaultTechWatchProfile }
