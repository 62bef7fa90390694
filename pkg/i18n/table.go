package i18n

type entry map[Language]string

var translations = map[string]entry{
	// Navigation
	"dashboard":         {English: "Dashboard", Hindi: "डैशबोर्ड", Telugu: "డాష్‌బోర్డ్"},
	"risk_assessment":   {English: "Risk Assessment", Hindi: "जोखिम मूल्यांकन", Telugu: "ప్రమాద అంచనా"},
	"digital_checklist": {English: "Digital Checklist", Hindi: "डिजिटल चेकलिस्ट", Telugu: "డిజిటల్ చెక్‌లిస్ట్"},
	"training_modules":  {English: "Training Modules", Hindi: "प्रशिक्षण मॉड्यूल", Telugu: "శిక్షణ మాడ్యూల్స్"},
	"alerts":            {English: "Alerts", Hindi: "अलर्ट", Telugu: "హెచ్చరికలు"},
	"logout":            {English: "Logout", Hindi: "लॉगआउट", Telugu: "లాగ్ అవుట్"},

	// Landing
	"app_title":     {English: "FarmSecure Pro", Hindi: "फार्मसिक्योर प्रो", Telugu: "ఫార్మ్ సెక్యూర్ ప్రో"},
	"main_headline": {English: "Keeping Farms Safe from Diseases", Hindi: "फार्मों को बीमारियों से सुरक्षित रखना", Telugu: "వ్యాధుల నుండి పెంపుడు జంతువులను కాపాడడం"},
	"main_subtitle": {
		English: "Comprehensive biosecurity management for pig and poultry farms with real-time monitoring and compliance tracking",
		Hindi:   "वास्तविक समय की निगरानी और अनुपालन ट्रैकिंग के साथ सूअर और पोल्ट्री फार्मों के लिए व्यापक बायोसिक्योरिटी प्रबंधन",
		Telugu:  "నిజ-సమయ పర్యవేక్షణ మరియు కంప్లైయన్స్ ట్రాకింగ్‌తో పిగ్ మరియు పోల్ట్రీ ఫామ్‌లకు సమగ్ర బయోసెక్యూరిటీ నిర్వహణ",
	},
	"login":       {English: "Login", Hindi: "लॉगिन", Telugu: "లాగిన్"},
	"signup":      {English: "Sign Up", Hindi: "साइन अप", Telugu: "సైన్ అప్"},
	"get_started": {English: "Get Started", Hindi: "शुरू करें", Telugu: "మొదలుపెట్టండి"},

	// Features
	"feature_risk_title": {English: "Risk Assessment", Hindi: "जोखिम मूल्यांकन", Telugu: "ప్రమాద అంచనా"},
	"feature_risk_desc": {
		English: "Evaluate and monitor your farm's biosecurity risks in real-time",
		Hindi:   "अपने फार्म की बायोसिक्योरिटी जोखिमों का वास्तविक समय में मूल्यांकन और निगरानी करें",
		Telugu:  "మీ ఫామ్ యొక్క బయోసెక్యూరిటీ ప్రమాదాలను నిజ-సమయంలో అంచనా వేయండి మరియు పర్యవేక్షించండి",
	},
	"feature_checklist_title": {English: "Digital Checklist", Hindi: "डिजिटल चेकलिस्ट", Telugu: "డిజిటల్ చెక్‌లిస్ట్"},
	"feature_checklist_desc": {
		English: "Track compliance with government regulations and best practices",
		Hindi:   "सरकारी नियमों और बेहतरीन प्रथाओं के अनुपालन को ट्रैक करें",
		Telugu:  "ప్రభుత్వ నిబంధనలు మరియు ఉత్తమ అభ్యాసాలతో అనుగుణ్యతను ట్రాక్ చేయండి",
	},
	"feature_training_title": {English: "Training Modules", Hindi: "प्रशिक्षण मॉड्यूल", Telugu: "శిక్షణ మాడ్యూల్స్"},
	"feature_training_desc": {
		English: "Interactive lessons and best practices for farm biosecurity",
		Hindi:   "फार्म बायोसिक्योरिटी के लिए इंटरैक्टिव पाठ और बेहतरीन अभ्यास",
		Telugu:  "ఫామ్ బయోసెక్యూరిటీ కోసం ఇంటరాక్టివ్ పాఠాలు మరియు ఉత్తమ అభ్యాసాలు",
	},
	"feature_alerts_title": {English: "Real-Time Alerts", Hindi: "रियल-टाइम अलर्ट", Telugu: "రియల్-టైమ్ అలర్ట్స్"},
	"feature_alerts_desc": {
		English: "Get instant notifications about disease outbreaks and regulatory changes",
		Hindi:   "रोग प्रकोप और नियामक परिवर्तनों के बारे में तत्काल सूचनाएं प्राप्त करें",
		Telugu:  "వ్యాధి వ్యాప్తి మరియు నియామక మార్పుల గురించి తక్షణ నోటిఫికేషన్‌లను పొందండి",
	},

	// Dashboard
	"welcome_back":       {English: "Welcome back", Hindi: "वापसी पर स्वागत है", Telugu: "తిరిగి స్వాగతం"},
	"farm_overview":      {English: "Farm Overview", Hindi: "फार्म अवलोकन", Telugu: "ఫామ్ అవలోకనం"},
	"risk_score":         {English: "Risk Score", Hindi: "जोखिम स्कोर", Telugu: "ప్రమాద స్కోర్"},
	"checklist_progress": {English: "Checklist Progress", Hindi: "चेकलिस्ट प्रगति", Telugu: "చెక్‌లిస్ట్ ప్రగతి"},
	"training_progress":  {English: "Training Progress", Hindi: "प्रशिक्षण प्रगति", Telugu: "శిక్షణ ప్రగతి"},
	"active_alerts":      {English: "Active Alerts", Hindi: "सक्रिय अलर्ट", Telugu: "క్రియాశీల హెచ్చరికలు"},

	// Risk levels
	"current_risk_level": {English: "Current Risk Level", Hindi: "वर्तमान जोखिम स्तर", Telugu: "ప్రస్తుత ప్రమాద స్థాయి"},
	"low_risk":           {English: "Low Risk", Hindi: "कम जोखिम", Telugu: "తక్కువ ప్రమాదం"},
	"medium_risk":        {English: "Medium Risk", Hindi: "मध्यम जोखिम", Telugu: "మధ్యమ ప్రమాదం"},
	"high_risk":          {English: "High Risk", Hindi: "उच्च जोखिम", Telugu: "అధిక ప్రమాదం"},
	"critical_risk":      {English: "Critical Risk", Hindi: "गंभीर जोखिम", Telugu: "క్రిటికల్ ప్రమాదం"},

	// Common
	"save":    {English: "Save", Hindi: "सेव करें", Telugu: "సేవ్ చేయండి"},
	"cancel":  {English: "Cancel", Hindi: "रद्द करें", Telugu: "రద్దు చేయండి"},
	"submit":  {English: "Submit", Hindi: "सबमिट करें", Telugu: "సబ్మిట్ చేయండి"},
	"loading": {English: "Loading...", Hindi: "लोड हो रहा है...", Telugu: "లోడవుతోంది..."},
	"error":   {English: "Error", Hindi: "त्रुटि", Telugu: "దోషం"},
	"success": {English: "Success", Hindi: "सफलता", Telugu: "విజయం"},
}
