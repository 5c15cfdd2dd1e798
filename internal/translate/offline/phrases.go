package offline

// phrases.go holds the static clinical phrase data used when no translation
// API credential is configured. The slices are ordered literals: when two
// entries normalise to the same key, the first-inserted entry wins and later
// duplicates are skipped at table build time.

// phrase maps a canonical English phrase to both dialect renderings.
type phrase struct {
	english   string
	mandarin  string
	cantonese string
}

var doctorPhrases = []phrase{
	{"hello", "你好", "你好"},
	{"hi", "你好", "你好"},
	{"good morning", "早上好", "早晨"},
	{"how are you feeling today", "您今天感觉怎么样", "你今日覺得點呀"},
	{"where does it hurt", "哪里痛", "邊度痛呀"},
	{"do you have any allergies", "您有什么过敏吗", "你有冇藥物敏感呀"},
	{"are you taking any medications", "您目前在服用什么药物吗", "你而家有冇食緊藥呀"},
	{"take this medication twice daily with food", "这个药每天两次，随餐服用", "呢隻藥每日食兩次，記得跟餐食"},
	{"take this medication twice daily", "这个药每天服用两次", "呢隻藥每日食兩次"},
	{"with food", "随餐服用", "跟餐食"},
	{"please take a deep breath", "请深呼吸", "唔該深呼吸"},
	{"please sit down", "请坐", "唔該坐低"},
	{"open your mouth", "请张开嘴", "唔該擘大個口"},
	{"roll up your sleeve", "请卷起袖子", "唔該捲起衫袖"},
	{"do you have a fever", "您发烧吗", "你有冇發燒呀"},
	{"do you feel dizzy", "您觉得头晕吗", "你覺唔覺得頭暈呀"},
	{"have you eaten today", "您今天吃过东西了吗", "你今日食咗嘢未呀"},
	{"this will not hurt", "这不会痛的", "唔會痛嘅"},
	{"we need to run some tests", "我们需要做一些检查", "我哋需要做啲檢查"},
	{"the doctor will see you now", "医生现在可以看您了", "醫生而家可以見你啦"},
	{"you need to rest", "您需要休息", "你需要休息"},
	{"drink plenty of water", "多喝水", "記得飲多啲水"},
	{"please come back in two weeks", "请两周后复诊", "唔該兩個禮拜之後返嚟覆診"},
	{"call us if it gets worse", "如果恶化请联系我们", "如果嚴重咗就打電話畀我哋"},
	{"thank you", "谢谢", "唔該晒"},
	{"goodbye", "再见", "再見"},
	// Duplicate of the first entry, kept to mirror the overlap in the source
	// phrase data; the build skips it, so "hello" stays deterministic.
	{"hello", "您好", "哈囉"},
}

// reply maps a literal dialect phrase spoken by the patient to English.
type reply struct {
	chinese string
	english string
}

var mandarinReplies = []reply{
	{"我对青霉素过敏", "I am allergic to penicillin"},
	{"我觉得头晕", "I feel dizzy"},
	{"好一点了", "I feel a little better"},
	{"我怀孕了", "I am pregnant"},
	{"睡不着", "I cannot sleep"},
	{"喉咙痛", "My throat hurts"},
	{"肚子痛", "My stomach hurts"},
	{"这里痛", "It hurts here"},
	{"听不懂", "I do not understand"},
	{"头痛", "I have a headache"},
	{"头晕", "I feel dizzy"},
	{"发烧", "I have a fever"},
	{"恶心", "I feel nauseous"},
	{"咳嗽", "I have a cough"},
	{"谢谢", "Thank you"},
}

var cantoneseReplies = []reply{
	{"我對盤尼西林過敏", "I am allergic to penicillin"},
	{"好返少少", "I feel a little better"},
	{"我有咗BB", "I am pregnant"},
	{"瞓唔著", "I cannot sleep"},
	{"喉嚨痛", "My throat hurts"},
	{"呢度痛", "It hurts here"},
	{"頭痛", "I have a headache"},
	{"頭暈", "I feel dizzy"},
	{"發燒", "I have a fever"},
	{"肚痛", "My stomach hurts"},
	{"作嘔", "I feel nauseous"},
	{"唔明", "I do not understand"},
	{"唔該", "Thank you"},
	{"咳", "I have a cough"},
}
