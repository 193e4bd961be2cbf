package domain

// Curated seeds shown before the deck falls back to live search.
// Profiles are GitHub logins, repos are owner/name slugs

// PriorityProfiles is the curated login list for the profile deck
var PriorityProfiles = []string{
	"Rajesh-Royal",
	"aidenybai",
	"mazeincoding",
	"ahmetskilinc",
	"nizzyabi",
	"BlankParticle",
	"nyzss",
	"t3dotgg",
	"PeerRich",
	"emrysal",
	"zomars",
	"Udit-takkar",
	"pumfleet",
	"izadoesdev",
	"StarKnightt",
	"anwarulislam",
	"MrgSub",
	"retrogtx",
	"nikitadrokin",
	"DevloperAmanSingh",
	"mezotv",
	"hbjORbj",
	"keithwillcode",
	"aashishparuvada",
	"San-77x",
	"simonorzel26",
	"ayush18pop",
	"taqui-786",
	"joschan21",
	"AntonioErdeljac",
	"adrianhajdin",
	"payloadcms",
	"shadcn",
	"OpenPipe",
	"vinta",
	"kentcdodds",
	"Balastrong",
	"tannerlinsley",
}

// PriorityRepos is the curated slug list for the repo deck
var PriorityRepos = []string{
	"Rajesh-Royal/Broprint.js",
	"calcom/cal.com",
	"Mail-0/Zero",
	"OpenCut-app/OpenCut",
	"t3-oss/create-t3-app",
	"StarKnightt/prasendev",
	"twitter/the-algorithm",
	"saadeghi/daisyui",
	"TanStack/query",
	"twitter/twemoji",
	"TabbyML/Tabby",
	"DIYgod/RSSHub",
	"imputnet/cobalt",
	"FFmpeg/FFmpeg",
	"yt-dlp/yt-dlp",
	"shadcn-ui/ui",
	"Tyrrrz/YoutubeDownloader",
	"taqui-786/Portfolio",
	"joschan21/digitalhippo",
	"AntonioErdeljac/next13-discord-clone",
	"adrianhajdin/ecommerce",
	"payloadcms/payload",
	"shadcn/taxonomy",
	"OpenPipe/ART",
	"vinta/awesome-python",
}

// SearchTopics seed the repo discovery queries
var SearchTopics = []string{
	"javascript",
	"typescript",
	"react",
	"nextjs",
	"nodejs",
	"python",
	"go",
	"rust",
}

// PriorityFor returns the curated list for an item type
func PriorityFor(t ItemType) []string {
	if t == TypeRepo {
		return PriorityRepos
	}
	return PriorityProfiles
}
