package similarity

import "testing"

var benchPairs = [][2]string{
	{"frstName", "firstName"},
	{"getUserNme", "getUserName"},
	{"HTTPSrver", "HTTPServer"},
	{"parse_jsn_response", "parse_json_response"},
	{"XMLHtpRequest", "XMLHttpRequest"},
	{"completely", "unrelated"},
}

func BenchmarkJaro(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, p := range benchPairs {
			_ = Jaro(p[0], p[1])
		}
	}
}

func BenchmarkJaroWinkler(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, p := range benchPairs {
			_ = JaroWinkler(p[0], p[1])
		}
	}
}

func BenchmarkScore(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, p := range benchPairs {
			_ = Score(p[0], p[1])
		}
	}
}

func BenchmarkSplitIdentifier(b *testing.B) {
	inputs := []string{
		"getUserName",
		"HTTPServerConfiguration",
		"parse_json_response",
		"XMLHttpRequestHandler",
		"get_user_by_id_v2",
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		for _, input := range inputs {
			_ = SplitIdentifier(input)
		}
	}
}
