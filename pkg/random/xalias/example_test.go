package xalias_test

import (
	"fmt"

	"github.com/omeyang/randkit/pkg/random/xalias"
)

func Example() {
	// 三个槽位，权重 1:0:3
	s, err := xalias.New([]float64{1, 0, 3})
	if err != nil {
		panic(err)
	}

	// 抽样所需的两个均匀随机数由调用方提供，
	// 这里用固定值演示确定性行为。
	fmt.Println(s.Pick(2, 0.5)) // 槽位 2 缩放权重 >= 1，保留自身
	fmt.Println(s.Pick(1, 0.5)) // 零权重槽位永远走别名

	// Output:
	// 2
	// 2
}

func Example_statistics() {
	s, err := xalias.New([]float64{1, 1, 1, 1})
	if err != nil {
		panic(err)
	}

	// 等权分布下每个槽位保留自身
	fmt.Println(s.N())
	fmt.Println(s.Pick(3, 0.999))

	// Output:
	// 4
	// 3
}
