package sentiment

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s wordSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Lexicons are read-only after init.
var (
	PositiveWords = newWordSet(
		"good", "great", "excellent", "amazing", "awesome", "wonderful", "fantastic",
		"love", "loved", "like", "liked", "happy", "glad", "nice", "best", "better",
		"beautiful", "brilliant", "perfect", "thanks", "thank", "thx", "appreciate",
		"helpful", "enjoy", "enjoyed", "fun", "cool", "super", "pleased", "positive",
		"recommend", "recommended", "fine", "kind", "friendly", "support", "supportive",
		"success", "successful", "welcome", "congrats", "congratulations", "well",
		"exciting", "excited", "impressive", "satisfied", "smooth", "reliable",
	)

	NegativeWords = newWordSet(
		"bad", "terrible", "awful", "horrible", "worst", "worse", "hate", "hated",
		"angry", "sad", "poor", "disappointed", "disappointing", "annoying", "annoyed",
		"ugly", "stupid", "useless", "broken", "problem", "problems", "issue", "issues",
		"fail", "failed", "failure", "wrong", "error", "slow", "sucks", "boring",
		"unhappy", "upset", "negative", "never", "complaint", "rude", "lost", "loss",
		"pain", "painful", "sorry", "unfortunately", "difficult", "mess", "trash",
		"waste", "cheated", "liar", "lie",
	)

	// ScamWords is disjoint from PositiveWords and NegativeWords.
	ScamWords = newWordSet(
		"scam", "scammer", "fraud", "fraudulent", "bitcoin", "btc", "crypto", "cryptocurrency",
		"usdt", "investment", "invest", "profit", "profits", "returns", "roi", "forex",
		"trading", "urgent", "urgently", "immediately", "hurry", "winner", "won", "prize",
		"lottery", "jackpot", "giveaway", "reward", "claim", "free", "bonus", "cash",
		"money", "transfer", "wire", "payment", "deposit", "withdraw", "wallet",
		"account", "bank", "password", "pin", "otp", "code", "verify", "verification",
		"login", "click", "link", "guaranteed", "guarantee", "double",
		"inheritance", "beneficiary", "refund", "loan", "credit", "gift", "card",
		"limited", "offer", "exclusive", "secret", "confidential", "unclaimed",
		"compensation", "airdrop", "mining", "paypal", "western", "moneygram",
	)
)
