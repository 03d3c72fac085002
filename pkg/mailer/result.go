package mailer

// Result reports the outcome of a single provider call.
//
// On success Delivered counts every to, cc, and bcc address submitted with
// the original message. The provider accepting the request is not a delivery
// guarantee, so treat the count as an upper bound. On rejection Delivered is
// zero and Failed lists every addressed recipient in to, cc, bcc order.
type Result struct {
	Failed    []string // Addresses the provider did not accept mail for
	Delivered int      // Number of recipients the provider accepted mail for
}

// Succeeded reports whether the provider accepted the send.
func (r Result) Succeeded() bool {
	return len(r.Failed) == 0
}
