package controld

import (
	"context"
	"errors"
	"testing"

	"github.com/ctrld-tools/controld-go/internal/testutil"
	"github.com/ctrld-tools/controld-go/pkg/model"
	"github.com/ctrld-tools/controld-go/pkg/util"
)

func TestCreateRuleWireFormat(t *testing.T) {
	srv, rec := testutil.RecordingServer(t, `{"rules": [{"do":0,"status":1,"order":1,"group":0}]}`)

	rules, err := testClient(srv.URL).Profiles().CustomRules().Create(context.Background(), "prof1",
		&CreateRuleForm{
			Do:        model.DoBlock,
			Status:    model.StatusEnabled,
			Hostnames: []string{"ads.example.com", "track.example.com"},
		})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rec.Method != "POST" || rec.Path != "/profiles/prof1/rules" {
		t.Errorf("request = %s %s", rec.Method, rec.Path)
	}
	// ENABLED serializes as the numeric code 1
	if got := rec.Form["status"]; len(got) != 1 || got[0] != "1" {
		t.Errorf("status = %v, want [1]", got)
	}
	if got := rec.Form["do"]; len(got) != 1 || got[0] != "0" {
		t.Errorf("do = %v, want [0]", got)
	}
	if got := rec.Form["hostnames[]"]; len(got) != 2 {
		t.Errorf("hostnames[] = %v", got)
	}
	if len(rules) != 1 || rules[0].Do != model.DoBlock {
		t.Errorf("rules = %+v", rules)
	}
}

func TestCreateSpoofRuleRequiresVia(t *testing.T) {
	srv, rec := testutil.RecordingServer(t, `{"rules": []}`)

	_, err := testClient(srv.URL).Profiles().CustomRules().Create(context.Background(), "prof1",
		&CreateRuleForm{
			Do:        model.DoSpoof,
			Status:    model.StatusEnabled,
			Hostnames: []string{"cdn.example.com"},
		})
	if err == nil {
		t.Fatal("SPOOF without via should fail")
	}
	if !errors.Is(err, util.ErrFieldRequired) {
		t.Errorf("should unwrap to ErrFieldRequired, got %v", err)
	}
	// validation failed before any network I/O
	if rec.Method != "" {
		t.Errorf("no request should be sent, got %s %s", rec.Method, rec.Path)
	}
}

func TestCreateRedirectRuleChecksProxy(t *testing.T) {
	srv, _ := testutil.RecordingServer(t, `{"rules": []}`)
	rules := testClient(srv.URL).Profiles().CustomRules()

	_, err := rules.Create(context.Background(), "prof1", &CreateRuleForm{
		Do:        model.DoRedirect,
		Status:    model.StatusEnabled,
		Via:       "jfk",
		Hostnames: []string{"video.example.com"},
	})
	if !errors.Is(err, util.ErrValidationFailed) {
		t.Errorf("lowercase proxy id should fail validation, got %v", err)
	}

	_, err = rules.Create(context.Background(), "prof1", &CreateRuleForm{
		Do:        model.DoRedirect,
		Status:    model.StatusEnabled,
		Via:       "JFK",
		Hostnames: []string{"video.example.com"},
	})
	if err != nil {
		t.Errorf("valid proxy id should pass: %v", err)
	}
}

func TestRulesListFolderPath(t *testing.T) {
	srv, rec := testutil.RecordingServer(t, `{"rules": []}`)
	rules := testClient(srv.URL).Profiles().CustomRules()

	if _, err := rules.List(context.Background(), "prof1", nil); err != nil {
		t.Fatalf("List root: %v", err)
	}
	if rec.Path != "/profiles/prof1/rules/" {
		t.Errorf("root path = %s", rec.Path)
	}

	if _, err := rules.List(context.Background(), "prof1", Int(3)); err != nil {
		t.Fatalf("List folder: %v", err)
	}
	if rec.Path != "/profiles/prof1/rules/3" {
		t.Errorf("folder path = %s", rec.Path)
	}
}

func TestCreateFolderRequiresName(t *testing.T) {
	form := &CreateFolderForm{}
	if err := form.Validate(); !errors.Is(err, util.ErrValidationFailed) {
		t.Errorf("empty name should fail validation, got %v", err)
	}
}

func TestModifyServiceFormValidates(t *testing.T) {
	form := &ModifyServiceForm{Do: Ptr(model.DoSpoof)}
	if err := form.Validate(); !errors.Is(err, util.ErrFieldRequired) {
		t.Errorf("SPOOF without via should fail, got %v", err)
	}

	form = &ModifyServiceForm{Do: Ptr(model.DoSpoof), Via: "10.0.0.1", ViaV6: "not-ipv6"}
	if err := form.Validate(); !errors.Is(err, util.ErrValidationFailed) {
		t.Errorf("bad via_v6 should fail, got %v", err)
	}

	form = &ModifyServiceForm{Do: Ptr(model.DoSpoof), Via: "10.0.0.1", ViaV6: "::1"}
	if err := form.Validate(); err != nil {
		t.Errorf("valid SPOOF form should pass: %v", err)
	}
}

func TestDefaultRuleGet(t *testing.T) {
	srv, rec := testutil.RecordingServer(t, `{"default": {"do": 1, "status": 1}}`)

	action, err := testClient(srv.URL).Profiles().DefaultRule().Get(context.Background(), "prof1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Path != "/profiles/prof1/default" {
		t.Errorf("path = %s", rec.Path)
	}
	if action.Do != model.DoBypass || action.Status != model.StatusEnabled {
		t.Errorf("action = %+v", action)
	}
}

func TestFilterModifyPath(t *testing.T) {
	srv, rec := testutil.RecordingServer(t, `{"filters": {"ads": {"do": 0, "status": 1}}}`)

	states, err := testClient(srv.URL).Profiles().Filters().Modify(context.Background(), "prof1", "ads",
		&ModifyFilterForm{Status: model.StatusEnabled})
	if err != nil {
		t.Fatalf("Modify: %v", err)
	}
	if rec.Path != "/profiles/prof1/filters/filter/ads" {
		t.Errorf("path = %s", rec.Path)
	}
	if action, ok := states["ads"]; !ok || action.Status != model.StatusEnabled {
		t.Errorf("states = %+v", states)
	}
}
