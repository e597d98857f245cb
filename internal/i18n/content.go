package i18n

// Content keys referenced by renderers.
const (
	KeyGreeting           = "greeting"
	KeyTimelineTitle      = "timelineTitle"
	KeyViewAll            = "viewAll"
	KeyServices           = "services"
	KeyServiceVisa        = "service_visa"
	KeyServiceTransport   = "service_transport"
	KeyServiceWallet      = "service_wallet"
	KeyServiceMedical     = "service_medical"
	KeyServiceShopping    = "service_shopping"
	KeyServiceCommunity   = "service_community"
	KeyServiceTranslator  = "service_translator"
	KeyServiceAdmin       = "service_admin"
	KeyOfficialNoticeBtn  = "officialResponseBtn"
	KeyOfficialNoticeMsg  = "officialResponseMsg"
	KeyAskAnything        = "askAnything"
	KeyAskBot             = "askBot"
	KeyVisaWelcome        = "visaWelcome"
	KeyFindRoute          = "findRoute"
	KeyVoiceUnsupported   = "voiceUnsupported"
	KeyMicrophoneDenied   = "microphoneDenied"
)

// DefaultTable returns the built-in UI content table.
func DefaultTable() *Table {
	return NewTable(map[string]Entry{
		KeyGreeting: {
			LocaleEnglish:    "Hello, Friend!",
			LocaleVietnamese: "Xin chào, bạn!",
			LocaleKorean:     "안녕하세요!",
			LocaleChinese:    "你好，朋友！",
		},
		KeyTimelineTitle: {
			LocaleEnglish:    "Timeline",
			LocaleVietnamese: "Lịch trình",
			LocaleKorean:     "타임라인",
			LocaleChinese:    "时间轴",
		},
		KeyViewAll: {
			LocaleEnglish:    "View All",
			LocaleVietnamese: "Xem tất cả",
			LocaleKorean:     "모두 보기",
			LocaleChinese:    "查看全部",
		},
		KeyServices: {
			LocaleEnglish:    "Services",
			LocaleVietnamese: "Dịch vụ",
			LocaleKorean:     "서비스",
			LocaleChinese:    "服务",
		},
		KeyServiceVisa: {
			LocaleEnglish:    "Visa",
			LocaleVietnamese: "Visa",
			LocaleKorean:     "비자",
			LocaleChinese:    "签证",
		},
		KeyServiceTransport: {
			LocaleEnglish:    "Transport",
			LocaleVietnamese: "Giao thông",
			LocaleKorean:     "교통",
			LocaleChinese:    "交通",
		},
		KeyServiceWallet: {
			LocaleEnglish:    "Pay",
			LocaleVietnamese: "Thanh toán",
			LocaleKorean:     "결제",
			LocaleChinese:    "支付",
		},
		KeyServiceMedical: {
			LocaleEnglish:    "Medical",
			LocaleVietnamese: "Y tế",
			LocaleKorean:     "의료",
			LocaleChinese:    "医疗",
		},
		KeyServiceShopping: {
			LocaleEnglish:    "Shopping",
			LocaleVietnamese: "Mua sắm",
			LocaleKorean:     "쇼핑",
			LocaleChinese:    "购物",
		},
		KeyServiceCommunity: {
			LocaleEnglish:    "Community",
			LocaleVietnamese: "Cộng đồng",
			LocaleKorean:     "커뮤니티",
			LocaleChinese:    "社区",
		},
		KeyServiceTranslator: {
			LocaleEnglish:    "Translator",
			LocaleVietnamese: "Dịch thuật",
			LocaleKorean:     "번역",
			LocaleChinese:    "翻译",
		},
		KeyServiceAdmin: {
			LocaleEnglish:    "Admin",
			LocaleVietnamese: "Hành chính",
			LocaleKorean:     "행정",
			LocaleChinese:    "行政",
		},
		KeyOfficialNoticeBtn: {
			LocaleEnglish:    "Official Notice",
			LocaleVietnamese: "Phản hồi từ cơ quan",
			LocaleKorean:     "공공기관 알림",
			LocaleChinese:    "官方通知",
		},
		KeyOfficialNoticeMsg: {
			LocaleEnglish:    "[Official] Your D-2 Visa extension application (Receipt No. 2023-A-992) is currently under review. Estimated completion: Oct 30.",
			LocaleVietnamese: "[Chính thức] Hồ sơ gia hạn Visa D-2 của bạn (Số biên nhận 2023-A-992) đang được thẩm định. Dự kiến hoàn tất: 30/10.",
			LocaleKorean:     "[공지] 귀하의 D-2 비자 연장 신청(접수번호 2023-A-992)이 심사 중입니다. 완료 예정일: 10월 30일.",
			LocaleChinese:    "[官方] 您的 D-2 签证延期申请（收据号 2023-A-992）目前正在审核中。预计完成时间：10月30日。",
		},
		KeyAskAnything: {
			LocaleEnglish:    "Ask anything about living in Korea...",
			LocaleVietnamese: "Hỏi bất cứ điều gì về cuộc sống tại Hàn Quốc...",
			LocaleKorean:     "한국 생활에 대해 무엇이든 물어보세요...",
			LocaleChinese:    "询问关于在韩国生活的任何事情...",
		},
		KeyAskBot: {
			LocaleEnglish:    "Ask K-Bot",
			LocaleVietnamese: "Hỏi K-Bot",
			LocaleKorean:     "K-Bot에 질문",
			LocaleChinese:    "问 K-Bot",
		},
		KeyVisaWelcome: {
			LocaleEnglish:    "Hello! I provide Visa info based on HiKorea & MOJ official data. How can I help?",
			LocaleVietnamese: "Xin chào! Tôi sẽ hỗ trợ bạn thông tin Visa từ nguồn HiKorea và Bộ Tư pháp. Bạn cần giúp gì?",
			LocaleKorean:     "안녕하세요! 하이코리아와 법무부 공식 자료 기반으로 비자 정보를 안내해 드립니다. 무엇을 도와드릴까요?",
			LocaleChinese:    "您好！我根据 HiKorea 和法务部官方资料提供签证信息。需要什么帮助？",
		},
		KeyFindRoute: {
			LocaleEnglish:    "Find Route",
			LocaleVietnamese: "Tìm đường",
			LocaleKorean:     "길 찾기",
			LocaleChinese:    "寻找路线",
		},
		KeyVoiceUnsupported: {
			LocaleEnglish:    "Your device does not support voice input.",
			LocaleVietnamese: "Thiết bị của bạn không hỗ trợ nhập liệu bằng giọng nói.",
			LocaleKorean:     "이 기기는 음성 입력을 지원하지 않습니다.",
			LocaleChinese:    "您的设备不支持语音输入。",
		},
		KeyMicrophoneDenied: {
			LocaleEnglish:    "Microphone access denied.",
			LocaleVietnamese: "Quyền truy cập micro bị từ chối.",
			LocaleKorean:     "마이크 접근이 거부되었습니다.",
			LocaleChinese:    "麦克风访问被拒绝。",
		},
	})
}
