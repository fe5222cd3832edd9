package scenario

// Content is the channel-specific payload of a scenario. One concrete
// shape exists per delivery channel; Channel reports which channel a
// payload belongs to so the corpus can reject mismatched records.
type Content interface {
	Channel() Type
}

type EmailContent struct {
	From           string `json:"from"`
	To             string `json:"to"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	HasAttachment  bool   `json:"hasAttachment,omitempty"`
	AttachmentName string `json:"attachmentName,omitempty"`
	TaskAction     string `json:"taskAction,omitempty"`
}

func (EmailContent) Channel() Type { return TypeEmail }

type SMSContent struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

func (SMSContent) Channel() Type { return TypeSMS }

type WebsiteContent struct {
	URL          string `json:"url"`
	PageTitle    string `json:"websiteTitle"`
	PageContent  string `json:"websiteContent"`
	BrandName    string `json:"brandName"`
	HasLoginForm bool   `json:"hasLoginForm"`
}

func (WebsiteContent) Channel() Type { return TypeWebsite }

type SocialContent struct {
	Platform    string `json:"platform"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Verified    bool   `json:"verified"`
	Post        string `json:"post"`
}

func (SocialContent) Channel() Type { return TypeSocial }

type VoiceContent struct {
	CallerNumber string `json:"callerNumber"`
	CallerName   string `json:"callerName"`
	Transcript   string `json:"transcript"`
}

func (VoiceContent) Channel() Type { return TypeVoice }

type QRCodeContent struct {
	Context     string `json:"qrContext"`
	Destination string `json:"qrDestination"`
	Location    string `json:"location"`
}

func (QRCodeContent) Channel() Type { return TypeQRCode }

// RansomwareContent covers lock screens, fake alerts and tech-support
// popups; Variant tells the client which chrome to draw.
type RansomwareContent struct {
	Title          string `json:"title"`
	Message        string `json:"message"`
	DemandAmount   string `json:"demandAmount,omitempty"`
	Cryptocurrency string `json:"cryptocurrency,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	CountdownSec   int    `json:"countdown,omitempty"`
	Variant        string `json:"variant"`
}

func (RansomwareContent) Channel() Type { return TypeRansomware }
