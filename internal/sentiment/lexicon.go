package sentiment

// lexicon is a subset of AFINN-165. Keys are lowercase.
var lexicon = map[string]int{
	"abandon": -2, "abandoned": -2, "abuse": -3, "abused": -3, "accident": -2, "accidents": -2,
	"accomplish": 2, "accomplished": 2, "accused": -2, "achieve": 2, "achieved": 2, "achievement": 2,
	"admire": 3, "advantage": 2, "afraid": -2, "agree": 1, "agreement": 1, "alarm": -2,
	"alarming": -2, "amazing": 4, "anger": -3, "angry": -3, "anxiety": -2, "applaud": 2,
	"approval": 2, "approve": 2, "approved": 2, "arrest": -2, "arrested": -3, "attack": -1,
	"attacked": -1, "attacks": -1, "award": 3, "awarded": 3, "awesome": 4, "bad": -3,
	"ban": -2, "banned": -2, "bankrupt": -3, "beautiful": 3, "benefit": 2, "benefits": 2,
	"best": 3, "better": 2, "blame": -2, "blamed": -2, "bless": 2, "blocked": -1,
	"bomb": -1, "boost": 1, "boosted": 1, "boosts": 1, "breakthrough": 3, "brilliant": 4,
	"broken": -1, "calm": 2, "care": 2, "catastrophe": -3, "celebrate": 3, "celebrated": 3,
	"celebrates": 3, "celebration": 3, "champion": 2, "champions": 2, "chaos": -2, "cheer": 2,
	"clash": -2, "clashes": -2, "collapse": -2, "collapsed": -2, "conflict": -2, "confident": 2,
	"congrats": 2, "congratulations": 2, "corrupt": -3, "corruption": -3, "crash": -2, "crashed": -2,
	"crisis": -3, "critical": -2, "criticism": -2, "criticized": -2, "cruel": -3, "cut": -1,
	"damage": -3, "damaged": -3, "danger": -2, "dangerous": -2, "dead": -3, "deadly": -3,
	"death": -2, "deaths": -2, "decline": -1, "defeat": -2, "defeated": -2, "delay": -1,
	"delayed": -1, "delight": 3, "denied": -2, "deny": -1, "destroy": -3, "destroyed": -3,
	"disaster": -2, "disappointed": -2, "disappointing": -2, "dispute": -2, "doubt": -1, "drop": -1,
	"dropped": -1, "drought": -2, "easy": 1, "effective": 2, "emergency": -2, "encourage": 2,
	"encouraging": 2, "enjoy": 2, "excellent": 3, "excited": 3, "exciting": 3, "fail": -2,
	"failed": -2, "failure": -2, "fair": 2, "fake": -3, "fantastic": 4, "fatal": -3,
	"fear": -2, "fears": -2, "fight": -1, "fine": 2, "fire": -2, "flood": -2,
	"floods": -2, "fraud": -4, "free": 1, "fresh": 1, "fun": 4, "gain": 2,
	"gains": 2, "glad": 3, "good": 3, "great": 3, "greatest": 3, "grow": 1,
	"growing": 1, "growth": 2, "guilty": -3, "happy": 3, "harm": -2, "hate": -3,
	"help": 2, "helped": 2, "helpful": 2, "hero": 2, "heroes": 2, "honor": 2,
	"hope": 2, "hopeful": 2, "hurt": -2, "ill": -2, "illegal": -3, "improve": 2,
	"improved": 2, "improvement": 2, "injured": -2, "injury": -2, "innovative": 2, "inspiring": 3,
	"kill": -3, "killed": -3, "killing": -3, "kills": -3, "lack": -2, "launch": 1,
	"lose": -3, "loses": -3, "losing": -3, "loss": -3, "losses": -3, "lost": -3,
	"love": 3, "loved": 3, "lucky": 3, "mess": -2, "miss": -2, "missed": -2,
	"missing": -2, "murder": -2, "negative": -2, "nice": 3, "no": -1, "outrage": -3,
	"panic": -3, "peace": 2, "peaceful": 2, "pleased": 3, "poor": -2, "positive": 2,
	"praise": 3, "praised": 3, "problem": -2, "problems": -2, "profit": 2, "profits": 2,
	"progress": 2, "protect": 1, "protest": -2, "protests": -2, "proud": 2, "rally": 1,
	"recover": 2, "recovered": 2, "recovery": 2, "reject": -1, "rejected": -1, "relief": 1,
	"rescue": 2, "rescued": 2, "resign": -1, "resigns": -1, "rich": 2, "riot": -2,
	"risk": -2, "risks": -2, "robbery": -2, "sad": -2, "safe": 1, "safety": 1,
	"scam": -2, "scandal": -3, "scared": -2, "shock": -2, "shocked": -2, "shocking": -2,
	"slump": -2, "smart": 1, "solve": 1, "solved": 1, "strike": -1, "strong": 2,
	"stronger": 2, "struggle": -2, "success": 2, "successful": 3, "suffer": -2, "suffering": -2,
	"suicide": -2, "support": 2, "supported": 2, "surge": 1, "suspect": -1, "terrible": -3,
	"terror": -3, "terrorist": -2, "theft": -2, "threat": -2, "threats": -2, "tragedy": -2,
	"tragic": -2, "triumph": 4, "trouble": -2, "unemployment": -2, "upset": -2, "victim": -3,
	"victims": -3, "victory": 3, "violence": -3, "violent": -3, "war": -2, "warning": -3,
	"welcome": 2, "win": 4, "winner": 4, "winning": 4, "wins": 4, "won": 3,
	"worried": -3, "worry": -3, "worse": -3, "worst": -3, "wow": 4, "wrong": -2,
}
