package scenario

// Easy scenarios carry loud, classic tells: misspelled domains, all-caps
// urgency, prizes nobody entered a draw for.
var easyCatalog = []*Scenario{
	{
		ID: "easy-phish-1", Type: TypeEmail, Difficulty: Easy, Answer: Phishing,
		Title: "Obvious Password Scam",
		Content: EmailContent{
			From:    "security@amaz0n-verify.com",
			To:      "you@company.com",
			Subject: "PASSWORD EXPIRES IN 2 HOURS!!!",
			Body: "URGENT: Your password is about to expire!\n\n" +
				"Click here immediately to reset: https://amaz0n-verify.com/reset\n\n" +
				"If you don't act NOW, your account will be LOCKED FOREVER!\n\nAmazon Security",
		},
		Explanation: "Classic phishing with a fake domain (amaz0n with a zero), excessive urgency and threatening language.",
		RedFlags: []string{
			"Fake domain with number substitution (0 for o)",
			"Excessive urgency and threats",
			"Generic sender",
			"Suspicious external link",
		},
		Hints: &AnalysisHints{ThreatLevel: "high", AttackVector: "Credential Harvesting"},
	},
	{
		ID: "easy-phish-2", Type: TypeSMS, Difficulty: Easy, Answer: Phishing,
		Title: "Prize Winner Scam",
		Content: SMSContent{
			Sender:  "+1-555-WINNER",
			Message: "CONGRATS!!! You won $1,000,000!!! Claim your prize NOW: bit.ly/cl4im-pr1ze Reply STOP to opt out",
		},
		Explanation: "Classic prize scam. You cannot win contests you never entered.",
		RedFlags: []string{
			"Unsolicited prize notification",
			"Shortened/suspicious URL",
			"Too good to be true",
			"Unknown sender",
		},
		Hints: &AnalysisHints{ThreatLevel: "high", AttackVector: "Advance Fee Fraud"},
	},
	{
		ID: "easy-phish-3", Type: TypeWebsite, Difficulty: Easy, Answer: Phishing,
		Title: "Fake PayPal Login",
		Content: WebsiteContent{
			URL:          "https://paypa1-secure.com/login",
			PageTitle:    "PayPal - Log In",
			PageContent:  "Log in to your PayPal account to verify recent suspicious activity. Enter your email and password below.",
			BrandName:    "PayPal",
			HasLoginForm: true,
		},
		Explanation: "Phishing website with a lookalike domain (paypa1 with the number 1 instead of L).",
		RedFlags: []string{
			"Fake domain (paypa1 not paypal)",
			"Credential harvesting attempt",
			"Unsolicited login request",
		},
		Hints: &AnalysisHints{ThreatLevel: "critical", AttackVector: "Credential Theft"},
	},
	{
		ID: "easy-phish-4", Type: TypeSocial, Difficulty: Easy, Answer: Phishing,
		Title: "Crypto Giveaway Scam",
		Content: SocialContent{
			Platform:    "Twitter/X",
			Username:    "EIonMuskOfficial",
			DisplayName: "Elon Musk",
			Verified:    false,
			Post: "I'm giving back to the community!\n\n" +
				"Send 0.1 BTC to the address below and receive 1 BTC back INSTANTLY!\n\n" +
				"Only for the next 30 minutes! Don't miss out!\n\nbc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
		},
		Explanation: "No one gives away free crypto. The username has a capital I instead of a lowercase L (EIon not Elon).",
		RedFlags: []string{
			"Impersonator account (EIon not Elon)",
			"Too good to be true",
			"Crypto giveaway scam",
			"Artificial urgency",
		},
		Hints: &AnalysisHints{ThreatLevel: "high", AttackVector: "Cryptocurrency Scam"},
	},
	{
		ID: "easy-phish-5", Type: TypeRansomware, Difficulty: Easy, Answer: Phishing,
		Title: "Browser Lock Scare Page",
		Content: RansomwareContent{
			Title: "!! YOUR COMPUTER HAS BEEN LOCKED !!",
			Message: "ALL YOUR FILES ARE ENCRYPTED. Pay $500 in Bitcoin within 24 hours or " +
				"everything will be deleted PERMANENTLY. Do NOT close this window or restart your computer.",
			DemandAmount:   "$500",
			Cryptocurrency: "Bitcoin",
			CountdownSec:   86400,
			Variant:        "fake_alert",
		},
		Explanation: "A browser popup cannot encrypt your files. Real ransomware does not ask politely from a web page.",
		RedFlags: []string{
			"Browser popup pretending to be system-level",
			"Cryptocurrency payment demand",
			"Countdown pressure",
			"Warning not to close the window",
		},
		Hints: &AnalysisHints{ThreatLevel: "medium", AttackVector: "Scareware"},
	},
	{
		ID: "easy-legit-1", Type: TypeEmail, Difficulty: Easy, Answer: Legitimate,
		Title: "Amazon Order Confirmation",
		Content: EmailContent{
			From:    "auto-confirm@amazon.com",
			To:      "you@email.com",
			Subject: "Your Amazon.com order #112-4847291-8472910",
			Body: "Hello,\n\nThank you for your order!\n\nOrder #112-4847291-8472910\nItem: Wireless Mouse\n" +
				"Total: $24.99\n\nTrack your package at amazon.com/orders\n\nThank you for shopping with us.\n\nAmazon.com",
			TaskAction: "Track Order",
		},
		Explanation: "Legitimate Amazon email from the official domain confirming a real order.",
		TrustIndicators: []string{
			"Official amazon.com domain",
			"Specific order details",
			"Links to amazon.com",
			"No urgency or threats",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
	{
		ID: "easy-legit-2", Type: TypeSMS, Difficulty: Easy, Answer: Legitimate,
		Title: "Doctor Appointment Reminder",
		Content: SMSContent{
			Sender: "74839 (HealthCare)",
			Message: "Reminder: You have an appointment with Dr. Smith tomorrow at 10:30 AM at Main Street Clinic. " +
				"Reply C to confirm or call 555-123-4567 to reschedule.",
		},
		Explanation: "Legitimate appointment reminder from a healthcare provider you have a relationship with.",
		TrustIndicators: []string{
			"Expected reminder for existing appointment",
			"Specific doctor name and location",
			"Office phone number provided",
			"No links or urgent demands",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
	{
		ID: "easy-legit-3", Type: TypeQRCode, Difficulty: Easy, Answer: Legitimate,
		Title: "Restaurant Menu QR",
		Content: QRCodeContent{
			Context:     "QR code printed on a professional table tent at an Italian restaurant with their logo and \"Scan for Menu\" text.",
			Destination: "Opens the restaurant's official website menu page",
			Location:    "Restaurant Table",
		},
		Explanation: "Legitimate QR code at a restaurant for viewing their digital menu.",
		TrustIndicators: []string{
			"Professionally printed with restaurant branding",
			"Goes to official restaurant website",
			"Standard practice at restaurants",
			"No personal info required",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
	{
		ID: "easy-legit-4", Type: TypeVoice, Difficulty: Easy, Answer: Legitimate,
		Title: "Pharmacy Prescription Ready",
		Content: VoiceContent{
			CallerNumber: "+1-555-456-7890",
			CallerName:   "CVS Pharmacy",
			Transcript: "\"This is CVS Pharmacy calling. Your prescription is ready for pickup at our Main Street " +
				"location. The pharmacy closes at 9 PM today. If you have questions, please call us at 555-456-7890. Thank you.\"",
		},
		Explanation: "Legitimate pharmacy call from the location where you have prescriptions.",
		TrustIndicators: []string{
			"Expected call (you have a prescription)",
			"Specific pharmacy location",
			"Call-back number provided",
			"No urgent demands or threats",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
	{
		ID: "easy-legit-5", Type: TypeWebsite, Difficulty: Easy, Answer: Legitimate,
		Title: "Google Search Page",
		Content: WebsiteContent{
			URL:          "https://www.google.com/search?q=cybersecurity+training",
			PageTitle:    "cybersecurity training - Google Search",
			PageContent:  "Standard Google search results page showing various cybersecurity training resources.",
			BrandName:    "Google",
			HasLoginForm: false,
		},
		Explanation: "Official Google website performing a search you initiated.",
		TrustIndicators: []string{
			"Official google.com domain",
			"Standard search results",
			"HTTPS secure connection",
			"You initiated the search",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
}
