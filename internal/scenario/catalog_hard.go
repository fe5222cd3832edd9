package scenario

// Hard scenarios use subdomain spoofing, real internal context and
// polished copy; legitimate ones deliberately resemble known attacks.
var hardCatalog = []*Scenario{
	{
		ID: "hard-phish-1", Type: TypeEmail, Difficulty: Hard, Answer: Phishing,
		Title: "Sophisticated Spear Phishing",
		Content: EmailContent{
			From:    "michael.chen@yourcompany.com",
			To:      "you@yourcompany.com",
			Subject: "Re: Q4 Budget Review - Updated Projections",
			Body: "Hi,\n\nFollowing up on yesterday's meeting with the finance team. I've updated the Q4 projections " +
				"based on Sarah's feedback.\n\nPlease review the attached spreadsheet and let me know your thoughts " +
				"before tomorrow's leadership sync.\n\nAlso, I noticed some discrepancies in the vendor payments. " +
				"Can you verify your credentials on our new finance portal? The IT team migrated it last week: " +
				"https://finance.yourcompany.com.portal-secure.net/verify\n\nThanks,\nMichael\n\n" +
				"Michael Chen | Senior Financial Analyst\nYourCompany Inc. | Finance Department",
			HasAttachment:  true,
			AttachmentName: "Q4_Budget_Projections_v3.xlsx",
		},
		Explanation: "Sophisticated spear phishing using context from real company activities. The link domain is actually portal-secure.net.",
		RedFlags: []string{
			"Subdomain spoofing (domain is portal-secure.net)",
			"Request for credential verification",
			"Urgency before meeting",
			"Attachment could be malicious",
		},
		Hints: &AnalysisHints{ThreatLevel: "critical", AttackVector: "Spear Phishing with Subdomain Spoofing"},
	},
	{
		ID: "hard-phish-2", Type: TypeWebsite, Difficulty: Hard, Answer: Phishing,
		Title: "Microsoft 365 OAuth Phishing",
		Content: WebsiteContent{
			URL:          "https://login.microsoft.com.auth-verify.net/oauth/authorize",
			PageTitle:    "Sign in - Microsoft 365",
			PageContent:  "Sign in with your organizational account to access the shared SharePoint documents.",
			BrandName:    "Microsoft",
			HasLoginForm: true,
		},
		Explanation: "Subdomain spoofing attack. The actual domain is auth-verify.net; microsoft.com is used as a subdomain to deceive.",
		RedFlags: []string{
			"Domain is auth-verify.net (subdomain spoofing)",
			"microsoft.com used as subdomain",
			"Often linked from phishing emails",
			"Perfect visual clone",
		},
		Hints: &AnalysisHints{ThreatLevel: "critical", AttackVector: "OAuth Phishing with Subdomain Spoofing"},
	},
	{
		ID: "hard-phish-3", Type: TypeVoice, Difficulty: Hard, Answer: Phishing,
		Title: "AI Voice Clone Scam",
		Content: VoiceContent{
			CallerNumber: "+1-555-847-2910",
			CallerName:   "Your Boss (Maybe)",
			Transcript: "\"Hey, it's me. I'm in a meeting with investors and my phone died, I'm borrowing someone's " +
				"phone. Look, I need you to do me a quick favor - can you purchase some Apple gift cards for client " +
				"appreciation gifts? I'll reimburse you when I'm back. Just text the codes to this number. " +
				"It's urgent, we need them before the meeting ends in 30 minutes.\"",
		},
		Explanation: "AI voice clone or impersonation scam. Bosses never ask employees to buy gift cards.",
		RedFlags: []string{
			"Gift card request",
			"Urgency",
			"Unusual phone number",
			"Request to text codes",
			"Cannot verify identity",
		},
		Hints: &AnalysisHints{ThreatLevel: "critical", AttackVector: "AI Voice Impersonation"},
	},
	{
		ID: "hard-phish-4", Type: TypeSocial, Difficulty: Hard, Answer: Phishing,
		Title: "Verified Account Compromise",
		Content: SocialContent{
			Platform:    "LinkedIn",
			Username:    "JohnDoe_TechRecruiter",
			DisplayName: "John Doe - Tech Recruiter @ Google",
			Verified:    true,
			Post: "Exciting opportunity at Google!\n\nWe're looking for talented engineers for a new stealth " +
				"project. Competitive salary + equity.\n\nDue to the confidential nature, please apply through our " +
				"secure portal:\nhttps://careers.google.com.apply-portal.io/stealth-project\n\nDM me for details!",
		},
		Explanation: "Compromised verified account posting phishing links. The domain is apply-portal.io, not google.com.",
		RedFlags: []string{
			"Subdomain spoofing on external domain",
			"Stealth/secret project urgency",
			"DM for details unusual for official recruiting",
			"Verified accounts can be compromised",
		},
		Hints: &AnalysisHints{ThreatLevel: "critical", AttackVector: "Account Takeover + Phishing"},
	},
	{
		ID: "hard-phish-5", Type: TypeRansomware, Difficulty: Hard, Answer: Phishing,
		Title: "Corporate Ransomware",
		Content: RansomwareContent{
			Title: "YOUR NETWORK HAS BEEN COMPROMISED",
			Message: "All files on this network have been encrypted with AES-256 encryption. We have also exfiltrated " +
				"847GB of sensitive data including customer records, financial documents, and employee information. " +
				"Pay 5 BTC within 72 hours or data will be published on our leak site.",
			DemandAmount:   "5 BTC (~$250,000)",
			Cryptocurrency: "Bitcoin",
			CountdownSec:   259200,
			Variant:        "ransomware",
		},
		Explanation: "Double extortion ransomware threatening a data leak. Never pay ransom - report to IT security immediately.",
		RedFlags: []string{
			"Ransomware attack",
			"Double extortion threat",
			"Cryptocurrency payment demand",
			"Data leak threat",
		},
		Hints: &AnalysisHints{ThreatLevel: "critical", AttackVector: "Double Extortion Ransomware"},
	},
	{
		ID: "hard-legit-1", Type: TypeEmail, Difficulty: Hard, Answer: Legitimate,
		Title: "GitHub Password Reset",
		Content: EmailContent{
			From:    "noreply@github.com",
			To:      "you@email.com",
			Subject: "Reset your GitHub password",
			Body: "Hey there!\n\nWe heard you need a password reset. Click the button below to reset it:\n\n" +
				"https://github.com/password_reset/abcd1234efgh5678\n\nThis link will expire in 24 hours.\n\n" +
				"If you didn't request this, you can safely ignore this email.\n\nThanks,\nThe GitHub Team",
			TaskAction: "Reset Password",
		},
		Explanation: "Legitimate password reset email that YOU initiated, from the official GitHub domain.",
		TrustIndicators: []string{
			"You just requested this reset",
			"Official github.com domain",
			"Standard reset format",
			"Option to ignore if not requested",
			"Reasonable expiration time",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
	{
		ID: "hard-legit-2", Type: TypeSMS, Difficulty: Hard, Answer: Legitimate,
		Title: "Suspicious Login - Real Alert",
		Content: SMSContent{
			Sender: "MSFT",
			Message: "Microsoft account security code: 847291. If you didn't request this code, someone may be " +
				"trying to access your account. Change your password at account.microsoft.com",
		},
		Explanation: "Legitimate security alert. Verify and potentially change your password, but this is a real Microsoft notification.",
		TrustIndicators: []string{
			"Links to official account.microsoft.com",
			"Provides security guidance",
			"Standard Microsoft format",
			"Does not ask you to reply or share the code",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
	{
		ID: "hard-legit-3", Type: TypeVoice, Difficulty: Hard, Answer: Legitimate,
		Title: "Doctor Office Callback",
		Content: VoiceContent{
			CallerNumber: "+1-555-123-4567",
			CallerName:   "Dr. Johnson's Office",
			Transcript: "\"Hi, this is Sarah from Dr. Johnson's office returning your call about scheduling a " +
				"follow-up appointment. We have availability next Thursday at 2 PM or Friday at 10 AM. " +
				"Please call us back at 555-123-4567 to confirm. Thank you.\"",
		},
		Explanation: "Legitimate callback from your doctor's office responding to your earlier call.",
		TrustIndicators: []string{
			"You called them earlier today",
			"Specific doctor name you see",
			"Offering appointment times",
			"Asking you to call back (not demanding info)",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
	{
		ID: "hard-legit-4", Type: TypeWebsite, Difficulty: Hard, Answer: Legitimate,
		Title: "Bank Wire Transfer Page",
		Content: WebsiteContent{
			URL:          "https://secure.chase.com/web/oao/wire-transfer",
			PageTitle:    "Wire Transfer | Chase",
			PageContent:  "Send a domestic or international wire transfer from your Chase account.",
			BrandName:    "Chase",
			HasLoginForm: true,
		},
		Explanation: "Official Chase wire transfer page you navigated to from your banking dashboard.",
		TrustIndicators: []string{
			"Official secure.chase.com subdomain",
			"You logged in and navigated here",
			"Standard banking feature",
			"Matches expected functionality",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
	{
		ID: "hard-legit-5", Type: TypeQRCode, Difficulty: Hard, Answer: Legitimate,
		Title: "Hotel Check-in QR",
		Content: QRCodeContent{
			Context:     "QR code on an official hotel email confirmation for mobile check-in at Marriott. The email is from @marriott.com.",
			Destination: "Opens the Marriott Bonvoy app for a digital room key",
			Location:    "Hotel Email",
		},
		Explanation: "Legitimate mobile check-in QR from Marriott for your confirmed reservation.",
		TrustIndicators: []string{
			"Email from official @marriott.com",
			"You have a reservation",
			"Opens official Marriott app",
			"Standard hotel digital key feature",
		},
		Hints: &AnalysisHints{ThreatLevel: "low"},
	},
}
