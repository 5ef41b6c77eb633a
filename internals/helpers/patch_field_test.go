package helper

import (
	"testing"

	"github.com/bytedance/sonic"
)

func TestUpdateFieldTriState(t *testing.T) {
	var req struct {
		Alamat UpdateField[string] `json:"alamat"`
		Kota   UpdateField[string] `json:"kota"`
		Kuota  UpdateField[int]    `json:"kuota"`
	}
	if err := sonic.Unmarshal([]byte(`{"alamat":null,"kuota":40}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !req.Alamat.ShouldUpdate() || !req.Alamat.IsNull() || req.Alamat.Ptr() != nil {
		t.Errorf("alamat should be explicit null")
	}
	if req.Kota.ShouldUpdate() {
		t.Errorf("kota absent must not update")
	}
	if !req.Kuota.ShouldUpdate() || req.Kuota.IsNull() || req.Kuota.Val() != 40 {
		t.Errorf("kuota = %+v", req.Kuota)
	}
}
