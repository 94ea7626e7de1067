// Package content holds the portfolio content records and the persisted
// store contract they are read from and written to. Every record carries a
// stable caller-assigned identifier, unique within its type.
package content

// Project categories form an open string set: the listed values are the
// built-in tabs, but unknown values coming from custom content are kept
// and displayed as-is.
const (
	CategoryWeb        = "web"
	CategoryIA         = "ia"
	CategoryReseaux    = "reseaux"
	CategoryEvenements = "evenements"
	CategoryAutres     = "autres"
)

type Project struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Visual            string   `json:"visual,omitempty"`
	Category          string   `json:"type"`
	Technologies      []string `json:"technologies"`
	SkillHighlight    string   `json:"skillHighlight"`
	GitHub            string   `json:"github,omitempty"`
	Demo              string   `json:"demo,omitempty"`
	PrimaryLink       string   `json:"primaryLink,omitempty"`
	PrimaryLinkLabel  string   `json:"primaryLinkLabel,omitempty"`
	HidePrimaryButton bool     `json:"hidePrimaryButton,omitempty"`
	Features          []string `json:"features"`
}

func (p Project) Key() string { return p.ID }

type Experience struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
	Image        string   `json:"image,omitempty"`
}

func (e Experience) Key() string { return e.ID }

type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type SkillCategory struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Skills []Skill `json:"skills"`
}

func (c SkillCategory) Key() string { return c.ID }

type Certification struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Skills      []string `json:"skills"`
	Link        string   `json:"link,omitempty"`
}

func (c Certification) Key() string { return c.ID }

type TechWatchArticle struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

func (a TechWatchArticle) Key() string { return a.ID }

type SocialPlatform string

const (
	PlatformYouTube   SocialPlatform = "youtube"
	PlatformTikTok    SocialPlatform = "tiktok"
	PlatformInstagram SocialPlatform = "instagram"
	PlatformOther     SocialPlatform = "other"
)

type SocialAccount struct {
	ID          string         `json:"id"`
	Platform    SocialPlatform `json:"platform"`
	Name        string         `json:"name"`
	Link        string         `json:"link"`
	Image       string         `json:"image,omitempty"`
	Description string         `json:"description"`
}

type DailyDevProfile struct {
	Description  string `json:"description,omitempty"`
	DevCardImage string `json:"devCardImage,omitempty"`
	ProfileLink  string `json:"profileLink"`
}

type FavoriteTopic struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// TechWatchProfile is a singleton: there is no hiding concept for it, a
// custom profile simply overlays the default one section by section.
type TechWatchProfile struct {
	DailyDev       DailyDevProfile `json:"dailyDev"`
	SocialAccounts []SocialAccount `json:"socialAccounts"`
	FavoriteTopic  FavoriteTopic   `json:"favoriteTopic"`
}
