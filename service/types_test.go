// SPDX-License-Identifier: MIT

package service_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/lvdata/dataset"
	"github.com/katalvlaran/lvdata/service"
)

var _ = Describe("Describe", func() {
	It("fills every statistic of [4,6,8]", func() {
		s := service.Describe(dataset.New([]int{8, 4, 6}))
		Expect(s.Count).To(Equal(3))
		Expect(*s.GCD).To(Equal(2))
		Expect(*s.LCM).To(Equal(24))
		Expect(*s.Range).To(Equal(4))
		Expect(*s.Mean).To(Equal(6.0))
		Expect(s.Mode).To(BeEmpty())
	})

	It("leaves everything nil for an empty dataset", func() {
		s := service.Describe(dataset.New(nil))
		Expect(s.Count).To(BeZero())
		Expect(s.Mean).To(BeNil())
		Expect(s.LCM).To(BeNil())
	})
})

var _ = Describe("Matches", func() {
	It("distinguishes no match from a count", func() {
		ds := dataset.New([]int{1, 2, 2, 3})
		Expect(service.Matches(ds, []int{5})).To(BeNil())
		Expect(*service.Matches(ds, []int{2})).To(Equal(2))
	})
})
