package scribearc

// Writer takes 60% of net revenue, rounded half up. The admin share is the
// remainder so the two always sum to the exact net amount.
const writerSharePercent = 60

// ComputeSplit computes the writer/admin revenue split from the price-affecting
// fields. All amounts are in cents. Pure; callers persist the result
// denormalized so historical payouts survive future percentage changes.
func ComputeSplit(agreedPrice, discountAmount, additionalCharges int64) (writerShare, adminShare int64, err error) {
	if agreedPrice < 0 {
		return 0, 0, newError(KindValidationFailed, "agreed price must not be negative, got %d", agreedPrice)
	}
	if discountAmount < 0 {
		return 0, 0, newError(KindValidationFailed, "discount amount must not be negative, got %d", discountAmount)
	}
	if additionalCharges < 0 {
		return 0, 0, newError(KindValidationFailed, "additional charges must not be negative, got %d", additionalCharges)
	}

	netAmount := agreedPrice - discountAmount + additionalCharges
	if netAmount < 0 {
		return 0, 0, newError(KindValidationFailed, "discount %d exceeds price %d plus charges %d", discountAmount, agreedPrice, additionalCharges)
	}

	// round half up of netAmount * 0.6 in integer arithmetic
	writerShare = (netAmount*writerSharePercent*2 + 100) / 200
	adminShare = netAmount - writerShare

	return writerShare, adminShare, nil
}
