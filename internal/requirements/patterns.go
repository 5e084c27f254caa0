package requirements

// The built-in pattern library. Order matters within a category: specific
// buckets are listed before generic ones so they win in reporting, and the
// per-job presence list preserves first-appearance order.
//
// All expressions are compiled case-insensitively. notAfter is an anchored
// expression checked against the text immediately following a match; it
// replaces the negative lookaheads the source data used, which RE2 does
// not support.

type patternDef struct {
	term     string
	expr     string
	notAfter string
}

// Certification patterns - specific named certifications
var certificationPatterns = []patternDef{
	// Microsoft role-based cert codes (most useful)
	{term: "Microsoft 365 Certification (MS-xxx)", expr: `\bMS-\d{3}\b`},
	{term: "Azure Certification (AZ-xxx)", expr: `\bAZ-\d{3}\b`},
	{term: "Modern Workplace / Endpoint (MD-xxx)", expr: `\bMD-\d{3}\b`},
	{term: "Security / Compliance (SC-xxx)", expr: `\bSC-\d{3}\b`},
	{term: "Power Platform (PL-xxx)", expr: `\bPL-\d{3}\b`},
	{term: "Data / AI (DP-xxx)", expr: `\bDP-\d{3}\b`},
	{term: "Dynamics 365 (MB-xxx)", expr: `\bMB-\d{3}\b`},
	{term: "Developer (MSFT misc: AI/Dev/Identity) (AI/AD/WS-xxx)", expr: `\b(AI|AD|WS)-\d{3}\b`},

	// Generic Microsoft certification wording (legacy + vague HR phrasing).
	// Codes are excluded here so they don't double-count.
	{term: "Microsoft Certified (Generic/Legacy)", expr: `\b(Microsoft\s+Certified|MCP|MCSE|MCSA|MCSD)\b`},

	// CompTIA - match both "CompTIA X+" and standalone "X+" in cert contexts
	{term: "CompTIA A+", expr: `\bCompTIA\s*A\+|\bA\+`, notAfter: `^[^\s,.)\]]`},
	{term: "CompTIA Network+", expr: `\bCompTIA\s*Network\+|\bNetwork\+`},
	{term: "CompTIA Security+", expr: `\bCompTIA\s*Security\+|\bSecurity\+`},
	{term: "CompTIA Server+", expr: `\bCompTIA\s*Server\+|\bServer\+`},
	{term: "CompTIA Cloud+", expr: `\bCompTIA\s*Cloud\+|\bCloud\+`},
	{term: "CompTIA Linux+", expr: `\bCompTIA\s*Linux\+|\bLinux\+`},
	{term: "CompTIA CySA+", expr: `\bCompTIA\s*CySA\+|\bCySA\+`},
	{term: "CompTIA PenTest+", expr: `\bCompTIA\s*PenTest\+|\bPenTest\+`},

	{term: "ITIL", expr: `\bITIL\s*(\d|Foundation|v\d|Practitioner|Expert)?\b`},

	// Cisco
	{term: "CCNA", expr: `\bCCNA\b`},
	{term: "CCNP", expr: `\bCCNP\b`},
	{term: "CCIE", expr: `\bCCIE\b`},
	{term: "Cisco Certified", expr: `\bCisco\s+Certified\b`},

	// Cloud
	{term: "AWS Certified", expr: `\bAWS\s+(Certified|Solutions\s+Architect|Developer|SysOps)\b`},
	{term: "Google Cloud Certified", expr: `\b(Google\s+Cloud|GCP)\s+(Certified|Professional|Associate)\b`},

	// Security
	{term: "CISSP", expr: `\bCISSP\b`},
	{term: "CISM", expr: `\bCISM\b`},

	// Vendor specific
	{term: "VMware Certified", expr: `\b(VMware|VCP|VCAP)\s*(Certified|Professional)?\b`},

	{term: "Certified (Generic)", expr: `\b[Cc]ertified\s+(in|for|as)\b|\b[Cc]ertification\s+(in|for|required|preferred|desired)`},
}

// microsoftCertCodes maps Microsoft certification codes to friendly names.
var microsoftCertCodes = map[string]string{
	"MS-900": "Microsoft 365 Fundamentals",
	"AZ-900": "Azure Fundamentals",
	"SC-900": "Security, Compliance, and Identity Fundamentals",
	"AI-900": "Azure AI Fundamentals",
	"DP-900": "Azure Data Fundamentals",
	"PL-900": "Power Platform Fundamentals",
	"MD-102": "Endpoint Administrator",
	"MS-102": "Microsoft 365 Administrator",
	"AZ-104": "Azure Administrator",
	"AZ-305": "Azure Solutions Architect Expert",
	"AZ-500": "Azure Security Engineer",
	"SC-300": "Identity and Access Administrator",
}

// Education/Qualification patterns
var educationPatterns = []patternDef{
	{term: "Bachelor Degree", expr: `\b(Bachelor'?s?\s*(Degree)?|BSc|B\.?Sc|BA|B\.?A)\b.*?(Computer\s+Science|IT|Information\s+Technology|Engineering)?`},
	{term: "Diploma", expr: `\b(Diploma|Dip\.?)\b.*?(IT|Information\s+Technology|Computing)?`},
	{term: "Certificate IV", expr: `\bCertificate\s*(IV|4)\b.*?(IT|Information\s+Technology)?`},
	{term: "Certificate III", expr: `\bCertificate\s*(III|3)\b.*?(IT|Information\s+Technology)?`},
	{term: "Tertiary Qualification", expr: `\b[Tt]ertiary\s+[Qq]ualification`},
	{term: "Degree in IT", expr: `\b[Dd]egree\b.*?(IT|Information\s+Technology|Computer\s+Science)`},
	{term: "TAFE", expr: `\bTAFE\b`},
}

// Technical skills patterns
var technicalSkillPatterns = []patternDef{
	// Operating systems
	{term: "Windows", expr: `\bWindows\b`},
	{term: "Windows 10/11", expr: `\bWindows\s*(10|11|10/11)\b`},
	{term: "Windows Server", expr: `\bWindows\s*Server\s*(\d{4})?\b`},
	{term: "macOS", expr: `\b(macOS|Mac\s*OS|Apple\s*(Mac|Desktop)|Mac\s*(computer|laptop)?)\b`},
	{term: "Linux", expr: `\b(Linux|Ubuntu|CentOS|RedHat|RHEL|Debian)\b`},

	// Microsoft stack
	{term: "Microsoft 365", expr: `\b(Microsoft\s*365|M365|MS\s*365|Office\s*365|O365)\b`},
	{term: "Microsoft Office", expr: `\b(Microsoft\s*Office|MS\s*Office|Office\s*(Suite|applications?)?)\b`},
	{term: "Active Directory", expr: `\b(Active\s*Directory|AD\s*(admin|user|account|group|domain|forest|object|management|experience|knowledge))\b`},
	{term: "Azure AD/Entra", expr: `\b(Azure\s*AD|Entra\s*ID|Azure\s*Active\s*Directory|EntraID|AAD)\b`},
	{term: "Exchange", expr: `\bExchange\s*(Online|Server)?\b`},
	{term: "SharePoint", expr: `\bSharePoint\b`},
	{term: "Teams", expr: `\b(Microsoft\s+)?Teams\b`},
	{term: "Intune", expr: `\b(Microsoft\s*)?Intune\b`},
	{term: "SCCM/Endpoint Manager", expr: `\b(SCCM|System\s*Center|Endpoint\s*Manager|ConfigMgr|MEM)\b`},
	{term: "PowerShell", expr: `\bPowerShell\b`},
	{term: "Group Policy", expr: `\b(Group\s*Policy|GPO)\b`},
	{term: "Azure", expr: `\bAzure\b`, notAfter: `^\s*(AD\b|Active\s*Directory)`},
	{term: "OneDrive", expr: `\bOneDrive\b`},
	{term: "Outlook", expr: `\bOutlook\b`},

	// Networking
	{term: "TCP/IP", expr: `\bTCP/IP\b`},
	{term: "DNS", expr: `\bDNS\b`},
	{term: "DHCP", expr: `\bDHCP\b`},
	{term: "VPN", expr: `\bVPN\b`},
	{term: "Firewall", expr: `\b[Ff]irewall\b`},
	{term: "LAN/WAN", expr: `\b(LAN|WAN|LAN/WAN)\b`},
	{term: "Networking", expr: `\b[Nn]etwork(ing|s)?\b`},
	{term: "VoIP/IP Telephony", expr: `\b(IP\s*[Tt]elephon|VOIP|VoIP|IP\s*[Pp]hone|telephony)\b`},
	{term: "Wi-Fi", expr: `\b(Wi-?Fi|WiFi|[Ww]ireless)\b`},

	// Virtualization & cloud
	{term: "VMware", expr: `\bVMware\b`},
	{term: "Hyper-V", expr: `\bHyper-?V\b`},
	{term: "Citrix", expr: `\bCitrix\b`},
	{term: "Cloud Services", expr: `\b[Cc]loud\b`},
	{term: "AWS", expr: `\bAWS\b`},

	// Remote & AV support
	{term: "Remote Support Tools", expr: `\b(TeamViewer|RDP|Remote\s*Desktop|AnyDesk|LogMeIn|ConnectWise)\b`},
	{term: "Video Conferencing", expr: `\b(Video\s*[Cc]onferenc|Zoom|WebEx|Polycom|Surface\s*Hub|Google\s*Meet)\b`},
	{term: "AV Support", expr: `\b(AV\s*support|[Aa]udio[\s-]*[Vv]isual)\b`},

	// Ticketing/ITSM
	{term: "ServiceNow", expr: `\bServiceNow\b`},
	{term: "Zendesk", expr: `\bZendesk\b`},
	{term: "Freshdesk", expr: `\bFresh[Dd]esk\b`},
	{term: "JIRA", expr: `\bJIRA\b`},
	{term: "Ticketing System", expr: `\b[Tt]icketing\s*[Ss]ystem\b`},
	{term: "ITSM Tools", expr: `\b(ITSM|ManageEngine|FreshService|Autotask|ConnectWise\s*Manage|Halo\s*PSA)\b`},

	// Mobile device management
	{term: "MDM", expr: `\bMDM\b|Mobile\s*Device\s*Management`},
	{term: "JAMF", expr: `\bJAMF\b`},
	{term: "Mobile Devices", expr: `\b(mobile\s*device|iOS|Android|iPhone|iPad|smartphone|tablet)\b`},

	// Hardware & deployment
	{term: "Hardware", expr: `\b[Hh]ardware\b`},
	{term: "Printers", expr: `\b[Pp]rinter\b`},
	{term: "System Imaging", expr: `\b[Ii]maging\b`},
	{term: "Software Deployment", expr: `\b(software\s*)?[Dd]eployment\b`},
	{term: "Patching", expr: `\b[Pp]atch(ing|es)?\b`},
	{term: "Laptop/Desktop", expr: `\b(laptop|desktop|PC|workstation)\b`},

	// Database & scripting
	{term: "SQL/Database", expr: `\b(SQL|MSSQL|[Dd]atabase)\b`},
	{term: "Scripting", expr: `\b[Ss]cripting\b`},
	{term: "Programming", expr: `\b(Python|PowerShell|Go|React|JavaScript|TypeScript|C#|\.NET|programming|coding)\b`},

	// Security
	{term: "Security", expr: `\b[Ss]ecurity\b`},
	{term: "Mimecast", expr: `\bMimecast\b`},
	{term: "Backup", expr: `\b[Bb]ackup\b`},
	{term: "Antivirus/EDR", expr: `\b(antivirus|anti-virus|EDR|endpoint\s*detection|CrowdStrike|Defender|Sophos|Sentinel\s*One)\b`},
	{term: "MFA/2FA", expr: `\b(MFA|2FA|multi[\s-]*factor|two[\s-]*factor)\b`},

	// Vendor specific
	{term: "Cisco", expr: `\bCisco\b`},
	{term: "Fortinet", expr: `\bFortinet\b`},
	{term: "Meraki", expr: `\bMeraki\b`},
	{term: "UniFi", expr: `\bUniFi\b`},
	{term: "HP/HPE", expr: `\b(HP|HPE|Hewlett[\s-]*Packard)\b`},
	{term: "Dell", expr: `\bDell\b`},
	{term: "Lenovo", expr: `\bLenovo\b`},

	{term: "Phone Support", expr: `\b(phone\s*support|answering\s*calls|taking\s*calls)\b`},
	{term: "Monitoring", expr: `\b(monitoring|alerts|RMM|SolarWinds|N-able|Datto)\b`},
	{term: "Infrastructure", expr: `\b[Ii]nfrastructure\b`},
}

// Soft skills patterns
var softSkillPatterns = []patternDef{
	{term: "Customer Service", expr: `\b[Cc]ustomer\s*[Ss]ervice\b`},
	{term: "Communication Skills", expr: `\b[Cc]ommunication\s*[Ss]kills?\b`},
	{term: "Problem Solving", expr: `\b[Pp]roblem[\s-]*[Ss]olving\b`},
	{term: "Troubleshooting", expr: `\b[Tt]roubleshoot(ing)?\b`},
	{term: "Team Player", expr: `\b[Tt]eam\s*[Pp]layer\b`},
	{term: "Time Management", expr: `\b[Tt]ime\s*[Mm]anagement\b`},
	{term: "Attention to Detail", expr: `\b[Aa]ttention\s*to\s*[Dd]etail\b`},
	{term: "Work Independently", expr: `\b[Ww]ork\s*[Ii]ndependently\b`},
	{term: "Proactive", expr: `\b[Pp]roactive\b`},
}

// Experience patterns
var experiencePatterns = []patternDef{
	{term: "1+ years", expr: `\b(1|one)\+?\s*years?\b.*?experience`},
	{term: "2+ years", expr: `\b(2|two)\+?\s*years?\b.*?experience`},
	{term: "3+ years", expr: `\b(3|three)\+?\s*years?\b.*?experience`},
	{term: "5+ years", expr: `\b(5|five)\+?\s*years?\b.*?experience`},
	{term: "1-2 years", expr: `\b1[\s-]*(to|-)?\s*2\s*years?\b`},
	{term: "2-3 years", expr: `\b2[\s-]*(to|-)?\s*3\s*years?\b`},
	{term: "3-5 years", expr: `\b3[\s-]*(to|-)?\s*5\s*years?\b`},
	{term: "MSP", expr: `\bMSP\b|\bmanaged\s+service\s+providers?\b`},
	{term: "MSP Experience", expr: `\bMSP\b.*?experience|experience.*?\bMSP\b`},
	{term: "Service Desk Experience", expr: `\b[Ss]ervice\s*[Dd]esk\b.*?experience`},
	{term: "Help Desk Experience", expr: `\b[Hh]elp\s*[Dd]esk\b.*?experience`},
}

// Support levels and ITSM processes
var supportLevelPatterns = []patternDef{
	{term: "Level 1/Tier 1 Support", expr: `\b(Level\s*1|L1|Tier\s*1|first[\s-]*line)\b`},
	{term: "Level 2/Tier 2 Support", expr: `\b(Level\s*2|L2|Tier\s*2|second[\s-]*line)\b`},
	{term: "Level 3/Tier 3 Support", expr: `\b(Level\s*3|L3|Tier\s*3|third[\s-]*line)\b`},
	{term: "Desktop Support", expr: `\b[Dd]esktop\s*[Ss]upport\b`},
	{term: "Remote Support", expr: `\b[Rr]emote\s*[Ss]upport\b`},
	{term: "Field Service/On-site", expr: `\b([Ff]ield\s*[Ss]ervice|[Oo]n[\s-]*[Ss]ite\s*[Ss]upport)\b`},
	{term: "Deskside Support", expr: `\b[Dd]eskside\s*[Ss]upport\b`},
	{term: "Incident Management", expr: `\b[Ii]ncident\s*(management|handling|resolution)?\b`},
	{term: "Problem Management", expr: `\b[Pp]roblem\s*[Mm]anagement\b`},
	{term: "Escalation", expr: `\b[Ee]scalat(e|ion|ing)\b`},
	{term: "SLA Management", expr: `\b(SLA|[Ss]ervice\s*[Ll]evel)\b`},
	{term: "Knowledge Base", expr: `\b[Kk]nowledge\s*[Bb]ase\b`},
	{term: "Triage", expr: `\b[Tt]riage\b`},
}

// Work arrangements
var workArrangementPatterns = []patternDef{
	{term: "Full-time", expr: `\b[Ff]ull[\s-]*[Tt]ime\b`},
	{term: "Part-time", expr: `\b[Pp]art[\s-]*[Tt]ime\b`},
	{term: "Casual", expr: `\b[Cc]asual\b`},
	{term: "Contract/Fixed-term", expr: `\b([Cc]ontract|[Ff]ixed[\s-]*[Tt]erm)\b`},
	{term: "Permanent", expr: `\b[Pp]ermanent\b`},
	{term: "On-site Work", expr: `\b[Oo]n[\s-]*[Ss]ite\b`, notAfter: `^\s*support`},
	{term: "Hybrid Working", expr: `\b[Hh]ybrid\s*([Ww]ork|[Mm]odel)?\b`},
	{term: "Work from Home/Remote", expr: `\b([Ww]ork\s*[Ff]rom\s*[Hh]ome|WFH|[Rr]emote\s*[Ww]ork)\b`},
	{term: "Flexible Work", expr: `\b[Ff]lexible\s*([Ww]ork|[Hh]ours)\b`},
	{term: "Traineeship", expr: `\b[Tt]raineeship\b`},
	{term: "Junior Level", expr: `\b[Jj]unior\b`},
	{term: "Mid-level", expr: `\b[Mm]id[\s-]*[Ll]evel\b`},
	{term: "Senior Level", expr: `\b[Ss]enior\b`},
}

// Benefits/Perks
var benefitPatterns = []patternDef{
	{term: "NFP/Salary Packaging", expr: `\b(NFP|[Nn]ot[\s-]*[Ff]or[\s-]*[Pp]rofit|[Ss]alary\s*[Pp]ackaging)\b`},
	{term: "Career Development", expr: `\b[Cc]areer\s*([Dd]evelopment|[Pp]rogression|[Gg]rowth)\b`},
	{term: "Training Provided", expr: `\b(full\s+training|comprehensive\s+training|paid\s+training|training\s+(provided|included|available)|on[\s-]*the[\s-]*job\s+training|we\s+will\s+train\s+you)\b`},
	{term: "Mentoring/Coaching", expr: `\b(mentor(ing|ship)?|coaching|buddy\s+system)\b`},
	{term: "Professional Development", expr: `\b(professional\s+development|learning\s*(and|&)\s*development|L\s*&\s*D|upskilling|training\s*(and|&)\s*development)\b`},
	{term: "Certification Support", expr: `\b(certification\s*(support|assistance|reimburs(e|ed|ement)|fund(ed|ing)|paid)|paid\s+certifications?)\b`},
	{term: "Training/Certification", expr: `\b(training|certification)\s*(opportunit(y|ies)|support|provided|available|fund(ed|ing)|reimburs(e|ed|ement)|assistance)\b`},
	{term: "Gym/Fitness Benefits", expr: `\b([Gg]ym|[Ff]itness\s*[Pp]assport|[Ff]itness\s*[Bb]enefit)\b`},
	{term: "Free Parking", expr: `\b([Ff]ree\s*[Pp]arking|[Pp]arking\s*[Oo]n[\s-]*[Ss]ite)\b`},
	{term: "Company Vehicle", expr: `\b[Cc]ompany\s*([Vv]ehicle|[Cc]ar)\b`},
	{term: "Bonus", expr: `\b([Pp]erformance\s*)?[Bb]onus\b`},
	{term: "EAP", expr: `\b(EAP|[Ee]mployee\s*[Aa]ssistance)\b`},
}

// Other requirements
var otherRequirementPatterns = []patternDef{
	{term: "Driver License", expr: `\b([Dd]river'?s?\s*[Ll]icen[cs]e|[Cc]lass\s*C\s*[Ll]icen[cs]e)\b`},
	{term: "Working with Children Check", expr: `\b(WWCC|Working\s*[Ww]ith\s*[Cc]hildren)\b`},
	{term: "Police Check", expr: `\b[Pp]olice\s*[Cc]heck\b`},
	{term: "Australian Citizen/PR", expr: `\b(Australian\s*(Citizen|PR|Permanent\s*Resident)|work\s*rights)\b`},
	{term: "On-call/After Hours", expr: `\b([Oo]n[\s-]*[Cc]all|[Aa]fter[\s-]*[Hh]ours)\b`},
	{term: "Travel Required", expr: `\b[Tt]ravel\s*(required|between|to\s*sites?)\b`},
	{term: "First Aid Certificate", expr: `\b[Ff]irst\s*[Aa]id\b`},
	{term: "HSC/Year 12", expr: `\b(HSC|[Yy]ear\s*12)\b`},
	{term: "Onboarding/Offboarding", expr: `\b([Oo]nboarding|[Oo]ffboarding)\b`},
	{term: "IT Asset Management", expr: `\b([Ii]t\s*)?[Aa]sset\s*[Mm]anagement\b`},
	{term: "Documentation", expr: `\b[Dd]ocument(ation|ing)\b`},
	{term: "User Provisioning", expr: `\b[Uu]ser\s*[Pp]rovisioning\b`},
	{term: "Compliance", expr: `\b[Cc]ompliance\b`},
}
