package directory

import "github.com/korea-connect/app-platform/internal/i18n"

// Default returns the built-in resource catalog.
func Default() *Directory {
	return New(map[Category][]Link{
		CategoryCommunity: {
			{
				Name: "HiKorea", URL: "https://www.hikorea.go.kr",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "Immigration & Visa Service",
					i18n.LocaleVietnamese: "Cổng thông tin Nhập cư & Visa",
					i18n.LocaleKorean:     "출입국/비자 포털",
					i18n.LocaleChinese:    "出入境/签证门户",
				},
			},
			{
				Name: "Seoul Global Center", URL: "https://global.seoul.go.kr",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "Support for Foreign Residents",
					i18n.LocaleVietnamese: "Trung tâm hỗ trợ người nước ngoài Seoul",
					i18n.LocaleKorean:     "서울글로벌센터",
					i18n.LocaleChinese:    "首尔全球中心",
				},
			},
			{
				Name: "Danuri Portal", URL: "https://www.liveinkorea.kr",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "Multicultural Family Support",
					i18n.LocaleVietnamese: "Thông tin gia đình đa văn hóa",
					i18n.LocaleKorean:     "다문화가족 지원 포털",
					i18n.LocaleChinese:    "多文化家庭支持",
				},
			},
			{
				Name: "VisitKorea", URL: "https://english.visitkorea.or.kr",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "Korea Tourism Organization",
					i18n.LocaleVietnamese: "Du lịch & Văn hóa Hàn Quốc",
					i18n.LocaleKorean:     "한국관광공사",
					i18n.LocaleChinese:    "韩国旅游发展局",
				},
			},
			{
				Name: "K-Campus", URL: "https://kcampus.kr",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "Student Community",
					i18n.LocaleVietnamese: "Cộng đồng sinh viên quốc tế",
					i18n.LocaleKorean:     "유학생 커뮤니티",
					i18n.LocaleChinese:    "留学生社区",
				},
			},
			{
				Name: "Craigslist Seoul", URL: "https://seoul.craigslist.org",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "Classifieds, Jobs, Housing",
					i18n.LocaleVietnamese: "Rao vặt, việc làm, nhà ở",
					i18n.LocaleKorean:     "벼룩시장, 구인구직",
					i18n.LocaleChinese:    "分类广告, 工作, 住房",
				},
			},
		},
		CategoryMedical: {
			{
				Name: "Go Korea Medical", URL: "https://go-korea.com/kham-suc-khoe-o-han-quoc/",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "Comprehensive Checkup Info",
					i18n.LocaleVietnamese: "Thông tin khám sức khỏe tổng quát",
					i18n.LocaleKorean:     "종합 건강검진 정보",
					i18n.LocaleChinese:    "综合体检信息",
				},
			},
			{
				Name: "Sun Medical Center", URL: "https://www.shhosp.co.kr/en/conts/intro/12/17_05.do",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "International Healthcare Center",
					i18n.LocaleVietnamese: "Đặt lịch khám bệnh viện Sun",
					i18n.LocaleKorean:     "국제진료센터 예약",
					i18n.LocaleChinese:    "国际医疗中心预订",
				},
			},
			{
				Name: "Severance Hospital", URL: "https://sev.severance.healthcare/sev-en/index.do",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "Top Tier University Hospital",
					i18n.LocaleVietnamese: "Bệnh viện đại học hàng đầu",
					i18n.LocaleKorean:     "신촌 세브란스 병원",
					i18n.LocaleChinese:    "延世大学医院",
				},
			},
		},
		CategoryShopping: {
			{
				Name: "Coupang", URL: "https://www.coupang.com",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "No.1 E-commerce in Korea",
					i18n.LocaleVietnamese: "Mua sắm trực tuyến số 1 Hàn Quốc",
					i18n.LocaleKorean:     "쿠팡",
					i18n.LocaleChinese:    "韩国第一电商",
				},
			},
			{
				Name: "Gmarket Global", URL: "http://global.gmarket.co.kr",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "Global Shopping & Shipping",
					i18n.LocaleVietnamese: "Mua sắm quốc tế & Ship hàng",
					i18n.LocaleKorean:     "G마켓 글로벌",
					i18n.LocaleChinese:    "Gmarket 全球",
				},
			},
			{
				Name: "11st", URL: "https://www.11st.co.kr",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "Popular Shopping Mall",
					i18n.LocaleVietnamese: "Sàn thương mại điện tử phổ biến",
					i18n.LocaleKorean:     "11번가",
					i18n.LocaleChinese:    "11街",
				},
			},
			{
				Name: "Olive Young", URL: "https://global.oliveyoung.com",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "Cosmetics & Beauty",
					i18n.LocaleVietnamese: "Mỹ phẩm & Làm đẹp",
					i18n.LocaleKorean:     "올리브영",
					i18n.LocaleChinese:    "美妆护肤",
				},
			},
		},
		CategoryAdmin: {
			{
				Name: "HiKorea", URL: "https://www.hikorea.go.kr",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "E-Government for Foreigners",
					i18n.LocaleVietnamese: "Cổng thông tin chính phủ điện tử",
					i18n.LocaleKorean:     "하이코리아",
					i18n.LocaleChinese:    "外国人电子政务",
				},
			},
			{
				Name: "Gov.kr", URL: "https://www.gov.kr/portal/main",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "Government Services Portal",
					i18n.LocaleVietnamese: "Cổng dịch vụ công quốc gia",
					i18n.LocaleKorean:     "정부24",
					i18n.LocaleChinese:    "政府服务门户",
				},
			},
			{
				Name: "Seoul Global Center", URL: "https://global.seoul.go.kr",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "Administrative Support",
					i18n.LocaleVietnamese: "Hỗ trợ thủ tục hành chính Seoul",
					i18n.LocaleKorean:     "서울글로벌센터 행정지원",
					i18n.LocaleChinese:    "首尔全球中心行政支持",
				},
			},
			{
				Name: "Korea Immigration", URL: "https://www.immigration.go.kr",
				Description: i18n.Entry{
					i18n.LocaleEnglish:    "Immigration Policy",
					i18n.LocaleVietnamese: "Cục quản lý xuất nhập cảnh",
					i18n.LocaleKorean:     "출입국외국인정책본부",
					i18n.LocaleChinese:    "出入境管理事务所",
				},
			},
		},
	})
}
