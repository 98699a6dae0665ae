package detect

// Version identifies the rule-table revision. Bump when groups change so
// classification runs can be compared across rule sets.
const Version = 3

// Group is one entry of the rule catalogue: a cue category backed by literal
// keywords (matched with the Aho-Corasick automaton) and regular-expression
// patterns (for cues that need context, like 気配...なし).
type Group struct {
	Category Category
	Keywords []string
	Patterns []string
}

var ruleTable = []Group{
	{
		Category: Negation,
		Keywords: []string{
			"全く", "まったく", "全然", "皆無", "いない", "居ない",
			"見えない", "見当たらない", "ゼロ", "不在", "出ない",
			"姿が見えない", "なし", "無し", "0匹", "0杯",
			"イカゼロ", "いかいない", "イカいない", "イカはいない",
			"帰", "諦", "撤収",
		},
		Patterns: []string{
			`気配.*?(?:なし|無し|ない|無い|皆無)`,
			`イカ.*?(?:なし|無し|いない|居ない|見えない|見当たらない|ゼロ|0)`,
			`一匹も.*?(?:なし|無し|いない|見えない|取れない)`,
			`取れ.*?(?:なかった|ゼロ|ない)`,
		},
	},
	{
		Category: Small,
		Keywords: []string{
			"少し", "少ない", "少なし", "ちらほら", "わずか", "かろうじて",
			"数匹", "数杯", "数個", "ポツポツ", "ぽつぽつ",
			"少量", "少なめ", "少なかった", "僅か", "乏しい",
		},
		Patterns: []string{
			`何とか\d+\s*(?:匹|杯)`,
		},
	},
	{
		Category: Normal,
		Keywords: []string{
			"普通", "そこそこ", "まあまあ", "それなり", "平均的",
			"例年並み", "並み", "標準", "通常", "ふつう", "ノーマル",
			"いつも通り", "十数",
		},
		Patterns: []string{
			`十匹程度`,
			`10.*?20\s*(?:匹|杯)`,
		},
	},
	{
		Category: Large,
		Keywords: []string{
			"多い", "多かった", "たくさん", "いっぱい", "多数", "多め",
			"よく獲れる", "よく取れる", "取れ出した", "取り放題", "豊富",
			"堪能", "夢中", "忙しい", "増加", "増えてきた", "増えた", "大漁",
		},
	},
	{
		Category: VeryLarge,
		Keywords: []string{
			"大量", "爆", "すごい", "凄い", "すごく", "凄く",
			"かなり", "相当", "非常に多い", "うじゃうじゃ", "たっぷり",
			"山ほど", "溢れる", "あふれる", "イカだらけ", "群れ",
			"多すぎ", "沢山", "過去最高", "記録的", "豊漁", "すごい数",
			"押し寄せる", "密集", "爆寄り", "掬い放題", "数えきれない",
		},
	},

	// Off-topic cue groups. Two distinct groups matching (with no harvest
	// vocabulary) marks a comment unrelated; a link is spam on this board
	// and marks it unrelated on its own.
	{
		Category: Weather,
		Keywords: []string{"天気", "波", "濁り", "風", "雨", "雪", "気温"},
	},
	{
		Category: Movement,
		Keywords: []string{"移動", "向かう", "出発", "予定", "明日", "様子見", "待機"},
	},
	{
		Category: Facility,
		Keywords: []string{"トイレ", "駐車場", "混雑", "混み具合", "マナー", "焚き火", "巡回", "パトカー"},
	},
	{
		Category: Lodging,
		Keywords: []string{"泊まる", "ホテル", "宿泊"},
	},
	{
		Category: Link,
		Patterns: []string{`(?i)youtube|youtu\.be|https?:`},
	},
	{
		Category: Question,
		Keywords: []string{"どう", "でしょ", "情報求む", "教えて", "どなたか"},
		Patterns: []string{`ですか\?`, `\?`},
	},
}
