package xmac

import "testing"

func TestAddr_IsUnicast(t *testing.T) {
	tests := []struct {
		name string
		addr Addr
		want bool
	}{
		// 单播地址（第一字节最低位为 0）
		{"unicast_00", MustParse("00:11:22:33:44:55"), true},
		{"unicast_02", MustParse("02:11:22:33:44:55"), true}, // LAA unicast
		{"unicast_fe", MustParse("fe:11:22:33:44:55"), true},

		// 多播地址（第一字节最低位为 1）
		{"multicast_01", MustParse("01:11:22:33:44:55"), false},
		{"multicast_ff", MustParse("ff:11:22:33:44:55"), false},
		{"broadcast", Broadcast(), false},

		// 全零/无效
		{"zero", Addr{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.IsUnicast(); got != tt.want {
				t.Errorf("IsUnicast() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddr_IsMulticast(t *testing.T) {
	tests := []struct {
		name string
		addr Addr
		want bool
	}{
		{"multicast_01", MustParse("01:00:5e:00:00:01"), true},
		{"multicast_33", MustParse("33:33:00:00:00:01"), true}, // IPv6 multicast
		{"broadcast", Broadcast(), true},
		{"unicast", MustParse("00:11:22:33:44:55"), false},
		{"zero", Addr{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.IsMulticast(); got != tt.want {
				t.Errorf("IsMulticast() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddr_IsZero(t *testing.T) {
	if !(Addr{}).IsZero() {
		t.Error("zero value IsZero() = false")
	}
	if MustParse("00:00:00:00:00:01").IsZero() {
		t.Error("00:00:00:00:00:01 IsZero() = true")
	}
}

func TestAddr_IsBroadcast(t *testing.T) {
	tests := []struct {
		name string
		addr Addr
		want bool
	}{
		{"broadcast", Broadcast(), true},
		{"almost", MustParse("ff:ff:ff:ff:ff:fe"), false},
		{"zero", Addr{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.IsBroadcast(); got != tt.want {
				t.Errorf("IsBroadcast() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddr_Administration(t *testing.T) {
	laa := MustParse("02:11:22:33:44:55")
	uaa := MustParse("00:1e:fb:f8:00:01")

	if !laa.IsLocallyAdministered() || laa.IsUniversallyAdministered() {
		t.Errorf("02:... classified wrong: LAA=%v UAA=%v",
			laa.IsLocallyAdministered(), laa.IsUniversallyAdministered())
	}
	if uaa.IsLocallyAdministered() || !uaa.IsUniversallyAdministered() {
		t.Errorf("00:1e:fb:... classified wrong: LAA=%v UAA=%v",
			uaa.IsLocallyAdministered(), uaa.IsUniversallyAdministered())
	}
	if (Addr{}).IsUniversallyAdministered() {
		t.Error("zero addr IsUniversallyAdministered() = true")
	}
}
