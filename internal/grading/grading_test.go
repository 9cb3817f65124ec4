package grading

import (
	"math/rand"
	"testing"
)

func TestBandFor_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Band
	}{
		{100, BandExcellent},
		{90.0, BandExcellent},
		{89.9, BandGood},
		{80.0, BandGood},
		{79.99, BandAverage},
		{70.0, BandAverage},
		{69.9, BandPass},
		{60.0, BandPass},
		{59.9, BandFail},
		{0, BandFail},
	}
	for _, tt := range tests {
		if got := BandFor(tt.score); got != tt.want {
			t.Errorf("BandFor(%v) 期望 %s, 实际: %s", tt.score, tt.want, got)
		}
	}
}

func TestBand_Label(t *testing.T) {
	labels := map[Band]string{
		BandExcellent: "优秀",
		BandGood:      "良好",
		BandAverage:   "中等",
		BandPass:      "及格",
		BandFail:      "不及格",
	}
	for b, want := range labels {
		if got := b.Label(); got != want {
			t.Errorf("%s 期望 %s, 实际: %s", b, want, got)
		}
	}
}

func TestComposite_Weights(t *testing.T) {
	w := DefaultWeights()
	got := Composite(w, 80, 70, 90, 100)
	// 80*0.2 + 70*0.3 + 90*0.4 + 100*0.1 = 16 + 21 + 36 + 10
	if got != 83 {
		t.Errorf("期望 83, 实际: %v", got)
	}
}

func TestComposite_InRange(t *testing.T) {
	w := DefaultWeights()
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		d, m, f, c := r.Float64()*100, r.Float64()*100, r.Float64()*100, r.Float64()*100
		got := Composite(w, d, m, f, c)
		if got < 0 || got > 100 {
			t.Fatalf("总成绩越界: %v (d=%v m=%v f=%v c=%v)", got, d, m, f, c)
		}
	}
	if got := Composite(w, 100, 100, 100, 100); got != 100 {
		t.Errorf("满分期望 100, 实际: %v", got)
	}
	if got := Composite(w, 0, 0, 0, 0); got != 0 {
		t.Errorf("零分期望 0, 实际: %v", got)
	}
}

func TestBuild_OnlyFinal(t *testing.T) {
	rows := Build(DefaultWeights(), []Input{{StudentID: "2023001", Name: "张三", Final: 95}})
	if len(rows) != 1 {
		t.Fatalf("期望 1 行, 实际: %d", len(rows))
	}
	if rows[0].Composite != 38 {
		t.Errorf("只有期末成绩时期望 38, 实际: %v", rows[0].Composite)
	}
	if rows[0].Band != BandFail {
		t.Errorf("期望 fail, 实际: %s", rows[0].Band)
	}
	if rows[0].Rank != 1 {
		t.Errorf("期望名次 1, 实际: %d", rows[0].Rank)
	}
}

func TestBuild_BandUsesRoundedComposite(t *testing.T) {
	w := Weights{Final: 1}
	rows := Build(w, []Input{
		{StudentID: "2023001", Final: 89.996},
		{StudentID: "2023002", Final: 89.994},
	})

	if rows[0].Composite != 90 || rows[0].Band != BandExcellent {
		t.Errorf("89.996 期望取整为 90.00 且为 excellent, 实际: %v %s", rows[0].Composite, rows[0].Band)
	}
	if rows[1].Composite != 89.99 || rows[1].Band != BandGood {
		t.Errorf("89.994 期望取整为 89.99 且为 good, 实际: %v %s", rows[1].Composite, rows[1].Band)
	}
}

func TestBuild_RankingTiesKeepStudentOrder(t *testing.T) {
	inputs := []Input{
		{StudentID: "2023001", Final: 80},
		{StudentID: "2023002", Final: 90},
		{StudentID: "2023003", Final: 80},
		{StudentID: "2023004"},
		{StudentID: "2023005", Final: 90},
	}
	rows := Build(DefaultWeights(), inputs)

	wantOrder := []string{"2023002", "2023005", "2023001", "2023003", "2023004"}
	for i, r := range rows {
		if r.StudentID != wantOrder[i] {
			t.Errorf("第 %d 名期望 %s, 实际: %s", i+1, wantOrder[i], r.StudentID)
		}
		if r.Rank != i+1 {
			t.Errorf("名次应连续递增, 第 %d 行实际: %d", i, r.Rank)
		}
	}
}

func TestBuild_TotalOrder(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	inputs := make([]Input, 200)
	for i := range inputs {
		inputs[i] = Input{
			StudentID: string(rune('A'+i/26)) + string(rune('a'+i%26)),
			Final:     float64(r.Intn(5) * 20),
			Daily:     float64(r.Intn(3) * 50),
		}
	}
	rows := Build(DefaultWeights(), inputs)
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if prev.Composite < cur.Composite {
			t.Fatalf("排名未按总成绩降序: %v < %v", prev.Composite, cur.Composite)
		}
		if prev.Composite == cur.Composite && prev.StudentID > cur.StudentID {
			t.Fatalf("同分时应按学号升序: %s > %s", prev.StudentID, cur.StudentID)
		}
	}
}

func TestClassroomComponent(t *testing.T) {
	if got := ClassroomComponent(nil, 0); got != 0 {
		t.Errorf("无活动时期望 0, 实际: %v", got)
	}
	// 三次活动只参加两次，缺席按 0 计
	if got := ClassroomComponent([]float64{90, 60}, 3); got != 50 {
		t.Errorf("期望 50, 实际: %v", got)
	}
	if got := ClassroomComponent([]float64{100, 100}, 2); got != 100 {
		t.Errorf("期望 100, 实际: %v", got)
	}
}

func TestSummarize(t *testing.T) {
	rows := Build(DefaultWeights(), []Input{
		{StudentID: "1", Daily: 100, Midterm: 100, Final: 100, Classroom: 100},
		{StudentID: "2", Daily: 50, Midterm: 50, Final: 50, Classroom: 50},
		{StudentID: "3"},
	})
	s := Summarize(rows)

	if !s.HasData {
		t.Fatal("期望 HasData=true")
	}
	if s.StudentCount != 3 || s.ScoredCount != 2 {
		t.Errorf("人数统计错误: %+v", s)
	}
	if s.Average != 75 || s.Max != 100 || s.Min != 50 {
		t.Errorf("统计值错误: %+v", s)
	}
	if s.PassRate != 50 {
		t.Errorf("及格率期望 50, 实际: %v", s.PassRate)
	}
}

func TestSummarize_NoData(t *testing.T) {
	s := Summarize(Build(DefaultWeights(), []Input{{StudentID: "1"}}))
	if s.HasData {
		t.Error("全部为 0 分时应无数据")
	}
	if s.StudentCount != 1 {
		t.Errorf("期望学生数 1, 实际: %d", s.StudentCount)
	}

	empty := Summarize(nil)
	if empty.HasData || empty.StudentCount != 0 {
		t.Errorf("空报表统计错误: %+v", empty)
	}
}
