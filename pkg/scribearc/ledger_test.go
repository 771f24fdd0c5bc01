package scribearc

import "testing"

func TestComputeSplit(t *testing.T) {
	tests := []struct {
		name            string
		price           int64
		discount        int64
		charges         int64
		wantWriterShare int64
		wantAdminShare  int64
		wantErr         bool
	}{
		{"even split", 2000, 0, 0, 1200, 800, false},
		{"with discount", 2000, 200, 0, 1080, 720, false},
		{"with charges", 2000, 0, 500, 1500, 1000, false},
		{"discount and charges", 2000, 200, 500, 1380, 920, false},
		{"zero net", 0, 0, 0, 0, 0, false},
		{"discount equals price", 1000, 1000, 0, 0, 0, false},
		{"rounds half up", 1, 0, 0, 1, 0, false},
		{"odd net amount", 333, 0, 0, 200, 133, false},
		{"half cent boundary", 25, 0, 0, 15, 10, false},
		{"negative price", -1, 0, 0, 0, 0, true},
		{"negative discount", 100, -1, 0, 0, 0, true},
		{"negative charges", 100, 0, -1, 0, 0, true},
		{"discount exceeds net", 100, 200, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writerShare, adminShare, err := ComputeSplit(tt.price, tt.discount, tt.charges)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ComputeSplit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !IsKind(err, KindValidationFailed) {
					t.Errorf("ComputeSplit() error kind = %v, want %v", KindOf(err), KindValidationFailed)
				}
				return
			}
			if writerShare != tt.wantWriterShare {
				t.Errorf("ComputeSplit() writerShare = %d, want %d", writerShare, tt.wantWriterShare)
			}
			if adminShare != tt.wantAdminShare {
				t.Errorf("ComputeSplit() adminShare = %d, want %d", adminShare, tt.wantAdminShare)
			}
		})
	}
}

func TestComputeSplitPreservesNetAmount(t *testing.T) {
	// the admin share is never rounded independently, so the invariant
	// writerShare + adminShare == net must hold for any valid input
	for price := int64(0); price <= 500; price++ {
		for _, discount := range []int64{0, 1, 7, 100} {
			for _, charges := range []int64{0, 3, 50} {
				net := price - discount + charges
				if net < 0 {
					continue
				}

				writerShare, adminShare, err := ComputeSplit(price, discount, charges)
				if err != nil {
					t.Fatalf("ComputeSplit(%d, %d, %d) unexpected error: %v", price, discount, charges, err)
				}
				if writerShare+adminShare != net {
					t.Fatalf("ComputeSplit(%d, %d, %d) = %d + %d, want sum %d", price, discount, charges, writerShare, adminShare, net)
				}
			}
		}
	}
}
