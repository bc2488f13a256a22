package wcwidth

import (
	"os"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestPolicyString(t *testing.T) {
	if Default.String() != "Default" {
		t.Errorf("expected zero policy to print as Default, is %s", Default)
	}
	if EastAsian.String() != "EastAsian" {
		t.Errorf("expected CJK policy to print as EastAsian, is %s", EastAsian)
	}
}

func TestPolicyFromEnvironment(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	p := PolicyFromEnvironment()
	t.Logf("user environment selects the %s policy", p)
	if p != Default && p != EastAsian {
		t.Errorf("policy from environment is neither Default nor EastAsian")
	}
}

func TestPolicyFromLocale(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	locales := [...]string{"ja_JP.UTF-8", "zh_CN.UTF-8", "ko_KR.UTF-8"}
	defer os.Setenv("LC_ALL", os.Getenv("LC_ALL"))
	for _, locale := range locales {
		os.Setenv("LC_ALL", locale)
		if p := PolicyFromEnvironment(); p != EastAsian {
			t.Errorf("expected locale %s to select EastAsian, selects %s", locale, p)
		}
	}
	os.Setenv("LC_ALL", "en_US.UTF-8")
	if p := PolicyFromEnvironment(); p != Default {
		t.Errorf("expected locale en_US to select Default, selects %s", p)
	}
}
