package scenario

// Medium scenarios drop the obvious tells and lean on plausible context:
// business email compromise, lookalike domains, spoofed sender names.
var mediumCatalog = []*Scenario{
	{
		ID: "med-phish-1", Type: TypeEmail, Difficulty: Medium, Answer: Phishing,
		Title: "CEO Wire Transfer Request",
		Content: EmailContent{
			From:    "john.smith@company-secure.net",
			To:      "you@company.com",
			Subject: "Urgent: Confidential Wire Transfer",
			Body: "Hi,\n\nI need you to process a wire transfer of $15,000 immediately. I'm currently in a meeting " +
				"with investors and can't call.\n\nPlease keep this confidential - it's for a surprise acquisition " +
				"we're working on.\n\nLet me know once it's done.\n\nJohn Smith\nCEO",
		},
		Explanation: "Business Email Compromise (BEC). Executives never request secret wire transfers via email.",
		RedFlags: []string{
			"Request for secrecy",
			"Urgent wire transfer via email",
			"External domain pretending to be internal",
			"Cannot verify via phone",
		},
		Hints: &AnalysisHints{ThreatLevel: "critical", AttackVector: "Business Email Compromise"},
	},
	{
		ID: "med-phish-2", Type: TypeSMS, Difficulty: Medium, Answer: Phishing,
		Title: "Bank Security Alert",
		Content: SMSContent{
			Sender: "CHASE-ALERT",
			Message: "Chase: Unusual activity detected on your account ending 4521. " +
				"Verify your identity immediately: chase-secure-verify.com or call 1-800-555-0199",
		},
		Explanation: "Fake bank alert with a lookalike domain. Real banks use their official domains only.",
		RedFlags: []string{
			"Lookalike domain (not chase.com)",
			"Unknown phone number",
			"Urgency tactic",
			"SMS sender name can be spoofed",
		},
		Hints: &AnalysisHints{ThreatLevel: "high", AttackVector: "Smishing"},
	},
	{
		ID: "med-phish-3", Type: TypeQRCode, Difficulty: Medium, Answer: Phishing,
		Title: "Parking Meter QR Overlay",
		Content: QRCodeContent{
			Context:     "QR code sticker placed over the official parking meter payment code. The sticker edges are slightly visible.",
			Destination: "parkingpay-city.net (redirects to a payment form asking for full credit card details)",
			Location:    "City Parking Meter",
		},
		Explanation: "Scammers place fake QR codes over legitimate ones to steal payment information.",
		RedFlags: []string{
			"QR code looks like a sticker placed over another",
			"Destination URL is not the official city website",
			"Asks for full credit card details",
		},
		Hints: &AnalysisHints{ThreatLevel: "high", AttackVector: "QR Code Overlay Attack"},
	},
	{
		ID: "med-phish-4", Type: TypeVoice, Difficulty: Medium, Answer: Phishing,
		Title: "Tech Support Scam Call",
		Content: VoiceContent{
			CallerNumber: "+1-888-555-0123",
			CallerName:   "Microsoft Technical Support",
			Transcript: "\"Hello, this is Microsoft Technical Support. We've detected suspicious activity on your " +
				"computer that indicates a serious virus infection. Your personal data, including banking information, " +
				"is being sent to hackers. We need remote access to your computer immediately to fix this. " +
				"Please go to anydesk.com and give me the access code.\"",
		},
		Explanation: "Microsoft never makes unsolicited calls about virus infections. This is a tech support scam.",
		RedFlags: []string{
			"Microsoft doesn't call unsolicited",
			"Request for remote access",
			"Fear tactics about hackers",
			"Urgency to act now",
		},
		Hints: &AnalysisHints{ThreatLevel: "high", AttackVector: "Tech Support Scam"},
	},
	{
		ID: "med-phish-5", Type: TypeRansomware, Difficulty: Medium, Answer: Phishing,
		Title: "Fake Windows Security Alert",
		Content: RansomwareContent{
			Title: "Windows Defender Security Center",
			Message: "CRITICAL: Your computer has been compromised. Trojan_Spyware detected. Your banking credentials " +
				"and personal photos are at risk. Do NOT close this window. Call Microsoft certified technicians immediately.",
			PhoneNumber: "1-855-555-0147",
			Variant:     "tech_support",
		},
		Explanation: "Windows Defender never displays browser popups asking you to call a phone number.",
		RedFlags: []string{
			"Windows Defender doesn't show browser popups",
			"Request to call unknown number",
			"Fear tactics",
			"Preventing window close",
		},
		Hints: &AnalysisHints{ThreatLevel: "medium", AttackVector: "Tech Support Scam"},
	},
	{
		ID: "med-legit-1", Type: TypeEmail, Difficulty: Medium, Answer: Legitimate,
		Title: "IT Password Expiration Notice",
		Content: EmailContent{
			From:    "it-helpdesk@yourcompany.com",
			To:      "you@yourcompany.com",
			Subject: "Password expiration reminder - 14 days remaining",
			Body: "Hi,\n\nYour network password will expire in 14 days. Please visit the internal IT portal at " +
				"https://it.yourcompany.com/password to reset it when convenient.\n\nIf you have questions, contact " +
				"the Help Desk at ext. 4357 or visit us in Room 215.\n\nThank you,\nIT Department",
			TaskAction: "Reset Password",
		},
		Explanation: "Legitimate IT email from your company domain with a reasonable timeline and internal portal link.",
		TrustIndicators: []string{
			"Sent from company domain",
			"Links to internal portal",
			"Reasonable 14-day timeline",
			"Contact info provided",
			"No urgent threats",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
	{
		ID: "med-legit-2", Type: TypeSMS, Difficulty: Medium, Answer: Legitimate,
		Title: "Bank Transaction Alert",
		Content: SMSContent{
			Sender: "73748 (Chase)",
			Message: "Chase: A $42.50 purchase was made at STARBUCKS on card ending 1234 on 12/15. " +
				"If you don't recognize this, call 1-800-935-9935.",
		},
		Explanation: "Legitimate bank alert from the official short code with the real Chase fraud number.",
		TrustIndicators: []string{
			"Official Chase short code 73748",
			"Specific transaction details",
			"Official Chase phone number",
			"No links to click",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
	{
		ID: "med-legit-3", Type: TypeSocial, Difficulty: Medium, Answer: Legitimate,
		Title: "Verified Company Announcement",
		Content: SocialContent{
			Platform:    "LinkedIn",
			Username:    "Microsoft",
			DisplayName: "Microsoft",
			Verified:    true,
			Post: "We're excited to announce the general availability of Microsoft 365 Copilot!\n\n" +
				"Learn more about AI-powered productivity at microsoft.com/copilot\n\n#Microsoft365 #AI #Productivity",
		},
		Explanation: "Verified company account posting about their own product with an official link.",
		TrustIndicators: []string{
			"Verified company account",
			"Links to official microsoft.com domain",
			"Announcement matches public news",
			"No personal info requests",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
	{
		ID: "med-legit-4", Type: TypeVoice, Difficulty: Medium, Answer: Legitimate,
		Title: "Bank Fraud Prevention Call",
		Content: VoiceContent{
			CallerNumber: "+1-800-935-9935",
			CallerName:   "Chase Fraud Prevention",
			Transcript: "\"Hello, this is Chase Bank fraud prevention. We detected an unusual transaction on your " +
				"account and wanted to verify it was you. A $847 purchase was made at Best Buy in Miami, FL. " +
				"Can you confirm if you made this purchase? If not, we will block the card immediately.\"",
		},
		Explanation: "Legitimate fraud prevention call from the official Chase number you can verify.",
		TrustIndicators: []string{
			"Official Chase fraud number (verifiable)",
			"Asking to confirm, not demanding info",
			"Specific transaction details",
			"Offering to protect your account",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
	{
		ID: "med-legit-5", Type: TypeWebsite, Difficulty: Medium, Answer: Legitimate,
		Title: "GitHub Login Page",
		Content: WebsiteContent{
			URL:          "https://github.com/login",
			PageTitle:    "Sign in to GitHub",
			PageContent:  "Sign in to GitHub to access your repositories, contribute to projects, and manage your account.",
			BrandName:    "GitHub",
			HasLoginForm: true,
		},
		Explanation: "Official GitHub login page with the correct domain.",
		TrustIndicators: []string{
			"Official github.com domain",
			"HTTPS secure connection",
			"Standard login page",
			"You navigated here directly",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
}
